package models

// Field limits, in runes
const (
	MaxNameLength  = 50
	MaxGroupLength = 10
)

// Request types

// Identity names a candidate or voter: (name, surname, group) is unique
// within each registry.
type Identity struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Group   string `json:"group"`
}

type RegisterCandidateRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Group     string `json:"group"`
	Statement string `json:"statement"`
}

func (r RegisterCandidateRequest) Identity() Identity {
	return Identity{Name: r.Name, Surname: r.Surname, Group: r.Group}
}

type CastVoteRequest struct {
	Voter     Identity `json:"voter"`
	Candidate Identity `json:"candidate"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type GroupsResponse struct {
	Groups []string `json:"groups"`
}

type IsCandidateResponse struct {
	IsCandidate bool `json:"is_candidate"`
}

type CandidatesResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type VotersResponse struct {
	Voters []Voter `json:"voters"`
}

// VotingFor is nil when the voter has not voted
type QueryVoteResponse struct {
	VotingFor *VotingFor `json:"voting_for"`
}

type StatsResponse struct {
	Stats []CandidateStats `json:"stats"`
}

// Domain types

type Candidate struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Statement string `json:"statement"`
	Group     string `json:"group"`
}

type Voter struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Group   string `json:"group"`
}

type VotingFor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Group   string `json:"group"`
}

type CandidateStats struct {
	CandidateID  string         `json:"-"`
	Name         string         `json:"name"`
	Surname      string         `json:"surname"`
	Group        string         `json:"group"`
	Statement    string         `json:"statement"`
	TotalVotes   int            `json:"total_votes"`
	VotesByGroup map[string]int `json:"votes_by_group"` // group name -> count, zero counts omitted
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
