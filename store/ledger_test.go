package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

var _ = Describe("Ledger", func() {

	var (
		ctx     context.Context
		conn    *sql.DB
		cleanup func()
		st      *store.Store
	)

	ann := person("Ann", "Lee", "1a")
	dan := person("Dan", "Ortiz", "1b")
	bob := person("Bob", "X", "1a")
	cid := person("Cid", "Y", "1b")

	statsFor := func(stats []models.CandidateStats, name string) models.CandidateStats {
		for _, s := range stats {
			if s.Name == name {
				return s
			}
		}
		Fail("no stats for " + name)
		return models.CandidateStats{}
	}

	BeforeEach(func() {
		ctx = context.Background()
		conn, cleanup = openTestDB()
		st = store.New(conn)

		_, err := st.SeedGroups(ctx, []string{"1a", "1b"})
		Expect(err).NotTo(HaveOccurred())

		for _, c := range []models.Identity{ann, dan} {
			_, err := st.RegisterCandidate(ctx, candidate(c, "statement of "+c.Name))
			Expect(err).NotTo(HaveOccurred())
		}
		for _, v := range []models.Identity{bob, cid} {
			_, err := st.RegisterVoter(ctx, v)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		cleanup()
	})

	Describe("#Cast", func() {
		It("makes Query return the chosen candidate", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			votingFor, err := st.Query(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor).NotTo(BeNil())
			Expect(votingFor.Name).To(Equal("Ann"))
			Expect(votingFor.Surname).To(Equal("Lee"))
			Expect(votingFor.Group).To(Equal("1a"))
			Expect(votingFor.ID).NotTo(BeEmpty())
		})

		It("replaces an earlier vote", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())
			Expect(st.Cast(ctx, bob, dan)).To(Succeed())

			votingFor, err := st.Query(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor.Name).To(Equal("Dan"))

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(statsFor(stats, "Ann").TotalVotes).To(Equal(0))
			Expect(statsFor(stats, "Dan").TotalVotes).To(Equal(1))
		})

		It("accepts the same vote twice", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(statsFor(stats, "Ann").TotalVotes).To(Equal(1))
		})

		It("checks the voter group first", func() {
			err := st.Cast(ctx, person("Bob", "X", "9z"), person("Nobody", "Z", "9z"))
			Expect(err).To(MatchError(store.ErrVoterGroup))
		})

		It("checks the voter before the candidate group", func() {
			err := st.Cast(ctx, person("Eve", "Q", "1a"), person("Ann", "Lee", "9z"))
			Expect(err).To(MatchError(store.ErrVoterNotFound))
		})

		It("reports an unknown candidate group", func() {
			err := st.Cast(ctx, bob, person("Ann", "Lee", "9z"))
			Expect(err).To(MatchError(store.ErrCandidateGroup))
			Expect(err).To(MatchError(store.ErrInvalidGroup))
		})

		It("reports an unknown candidate without touching the previous vote", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			err := st.Cast(ctx, bob, person("Nobody", "Z", "1a"))
			Expect(err).To(MatchError(store.ErrCandidateNotFound))

			votingFor, err := st.Query(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor.Name).To(Equal("Ann"))
		})
	})

	Describe("#Withdraw", func() {
		It("removes the vote", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			removed, err := st.Withdraw(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())

			Expect(st.Query(ctx, bob)).To(BeNil())
		})

		It("is a no-op for a voter without a vote", func() {
			removed, err := st.Withdraw(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())

			removed, err = st.Withdraw(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
		})

		It("only affects the given voter", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())
			Expect(st.Cast(ctx, cid, ann)).To(Succeed())

			_, err := st.Withdraw(ctx, bob)
			Expect(err).NotTo(HaveOccurred())

			votingFor, err := st.Query(ctx, cid)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor.Name).To(Equal("Ann"))
		})

		It("fails for unknown voters and groups", func() {
			_, err := st.Withdraw(ctx, person("Eve", "Q", "1a"))
			Expect(err).To(MatchError(store.ErrVoterNotFound))

			_, err = st.Withdraw(ctx, person("Bob", "X", "9z"))
			Expect(err).To(MatchError(store.ErrVoterGroup))
		})
	})

	Describe("#Query", func() {
		It("returns nil for a voter who has not voted", func() {
			votingFor, err := st.Query(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor).To(BeNil())
		})

		It("fails for unknown voters and groups", func() {
			_, err := st.Query(ctx, person("Eve", "Q", "1a"))
			Expect(err).To(MatchError(store.ErrVoterNotFound))

			_, err = st.Query(ctx, person("Bob", "X", "9z"))
			Expect(err).To(MatchError(store.ErrVoterGroup))
		})
	})

	Describe("#Tally", func() {
		It("breaks votes down by the voter's group", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())
			Expect(st.Cast(ctx, cid, ann)).To(Succeed())

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())

			a := statsFor(stats, "Ann")
			Expect(a.Surname).To(Equal("Lee"))
			Expect(a.Group).To(Equal("1a"))
			Expect(a.Statement).To(Equal("statement of Ann"))
			Expect(a.TotalVotes).To(Equal(2))
			Expect(a.VotesByGroup).To(Equal(map[string]int{"1a": 1, "1b": 1}))
		})

		It("includes candidates without votes", func() {
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(HaveLen(2))

			d := statsFor(stats, "Dan")
			Expect(d.TotalVotes).To(Equal(0))
			Expect(d.VotesByGroup).NotTo(BeNil())
			Expect(d.VotesByGroup).To(BeEmpty())
		})

		It("omits groups that gave no votes", func() {
			Expect(st.Cast(ctx, cid, dan)).To(Succeed())

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(statsFor(stats, "Dan").VotesByGroup).To(Equal(map[string]int{"1b": 1}))
		})

		It("orders candidates by group, surname and name", func() {
			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats[0].Name).To(Equal("Ann"))
			Expect(stats[1].Name).To(Equal("Dan"))
		})

		It("matches what Query reports for every voter", func() {
			extra := []models.Identity{
				person("Fay", "A", "1a"),
				person("Gus", "B", "1b"),
				person("Hal", "C", "1b"),
			}
			for _, v := range extra {
				_, err := st.RegisterVoter(ctx, v)
				Expect(err).NotTo(HaveOccurred())
			}
			voters := append([]models.Identity{bob, cid}, extra...)

			Expect(st.Cast(ctx, bob, ann)).To(Succeed())
			Expect(st.Cast(ctx, cid, dan)).To(Succeed())
			Expect(st.Cast(ctx, extra[0], dan)).To(Succeed())
			Expect(st.Cast(ctx, extra[1], ann)).To(Succeed())
			Expect(st.Cast(ctx, extra[1], dan)).To(Succeed())
			_, err := st.Withdraw(ctx, cid)
			Expect(err).NotTo(HaveOccurred())

			expected := map[string]int{}
			for _, v := range voters {
				votingFor, err := st.Query(ctx, v)
				Expect(err).NotTo(HaveOccurred())
				if votingFor != nil {
					expected[votingFor.Name]++
				}
			}

			stats, err := st.Tally(ctx)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range stats {
				Expect(s.TotalVotes).To(Equal(expected[s.Name]), s.Name)

				sum := 0
				for _, n := range s.VotesByGroup {
					sum += n
				}
				Expect(sum).To(Equal(s.TotalVotes), s.Name)
			}
			Expect(statsFor(stats, "Dan").TotalVotes).To(Equal(2))
		})
	})
})
