package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

var _ = Describe("Registries", func() {

	var (
		ctx     context.Context
		conn    *sql.DB
		cleanup func()
		st      *store.Store
	)

	ann := person("Ann", "Lee", "1a")
	bob := person("Bob", "X", "1a")

	BeforeEach(func() {
		ctx = context.Background()
		conn, cleanup = openTestDB()
		st = store.New(conn)
		_, err := st.SeedGroups(ctx, []string{"1b", "1a", "2a"})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cleanup()
	})

	Describe("#SeedGroups", func() {
		It("lists seeded groups in name order", func() {
			Expect(st.ListGroups(ctx)).To(Equal([]string{"1a", "1b", "2a"}))
		})

		It("leaves a populated registry untouched", func() {
			n, err := st.SeedGroups(ctx, []string{"9z"})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(0))
			Expect(st.ListGroups(ctx)).NotTo(ContainElement("9z"))
		})

		It("skips repeated names when seeding an empty registry", func() {
			other, otherCleanup := openTestDB()
			defer otherCleanup()

			fresh := store.New(other)
			n, err := fresh.SeedGroups(ctx, []string{"3a", "3a", "3b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
			Expect(fresh.ListGroups(ctx)).To(Equal([]string{"3a", "3b"}))
		})

		It("returns an empty list for an empty registry", func() {
			other, otherCleanup := openTestDB()
			defer otherCleanup()

			groups, err := store.New(other).ListGroups(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).NotTo(BeNil())
			Expect(groups).To(BeEmpty())
		})
	})

	Describe("#RegisterCandidate", func() {
		It("creates a candidate that can be looked up", func() {
			id, err := st.RegisterCandidate(ctx, candidate(ann, "More recess"))
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeEmpty())

			got, err := st.GetCandidate(ctx, ann)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(id))
			Expect(got.Statement).To(Equal("More recess"))
			Expect(got.Group).To(Equal("1a"))
		})

		It("rejects an unknown group", func() {
			_, err := st.RegisterCandidate(ctx, candidate(person("Ann", "Lee", "9z"), "x"))
			Expect(err).To(MatchError(store.ErrCandidateGroup))
			Expect(err).To(MatchError(store.ErrInvalidGroup))
		})

		It("rejects a duplicate identity", func() {
			_, err := st.RegisterCandidate(ctx, candidate(ann, "first"))
			Expect(err).NotTo(HaveOccurred())

			_, err = st.RegisterCandidate(ctx, candidate(ann, "second"))
			Expect(err).To(MatchError(store.ErrCandidateExists))
			Expect(err).To(MatchError(store.ErrDuplicate))
		})

		It("allows the same name in another group", func() {
			_, err := st.RegisterCandidate(ctx, candidate(ann, "x"))
			Expect(err).NotTo(HaveOccurred())
			_, err = st.RegisterCandidate(ctx, candidate(person("Ann", "Lee", "1b"), "y"))
			Expect(err).NotTo(HaveOccurred())

			Expect(st.ListCandidates(ctx)).To(HaveLen(2))
		})
	})

	Describe("#IsCandidate", func() {
		BeforeEach(func() {
			_, err := st.RegisterCandidate(ctx, candidate(ann, "x"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("is true for a registered candidate", func() {
			Expect(st.IsCandidate(ctx, ann)).To(BeTrue())
		})

		It("is false for an unregistered person", func() {
			Expect(st.IsCandidate(ctx, bob)).To(BeFalse())
		})

		It("is false for an unknown group rather than an error", func() {
			ok, err := st.IsCandidate(ctx, person("Ann", "Lee", "9z"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("#ListCandidates", func() {
		It("orders by group, surname and name", func() {
			for _, c := range []models.Identity{
				person("Zed", "Adams", "1b"),
				person("Amy", "Brown", "1a"),
				person("Cal", "Adams", "1a"),
			} {
				_, err := st.RegisterCandidate(ctx, candidate(c, "s"))
				Expect(err).NotTo(HaveOccurred())
			}

			list, err := st.ListCandidates(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].Name).To(Equal("Cal"))
			Expect(list[1].Name).To(Equal("Amy"))
			Expect(list[2].Name).To(Equal("Zed"))
			Expect(list[2].Group).To(Equal("1b"))
		})
	})

	Describe("#RemoveCandidate", func() {
		It("fails for an unknown group", func() {
			_, err := st.RemoveCandidate(ctx, person("Ann", "Lee", "9z"))
			Expect(err).To(MatchError(store.ErrCandidateGroup))
		})

		It("fails for an unknown candidate", func() {
			_, err := st.RemoveCandidate(ctx, ann)
			Expect(err).To(MatchError(store.ErrCandidateNotFound))
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("removes the candidate and withdraws votes cast for them", func() {
			_, err := st.RegisterCandidate(ctx, candidate(ann, "x"))
			Expect(err).NotTo(HaveOccurred())
			_, err = st.RegisterVoter(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Cast(ctx, bob, ann)).To(Succeed())

			cleared, err := st.RemoveCandidate(ctx, ann)
			Expect(err).NotTo(HaveOccurred())
			Expect(cleared).To(Equal(1))

			Expect(st.IsCandidate(ctx, ann)).To(BeFalse())
			votingFor, err := st.Query(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(votingFor).To(BeNil())
			Expect(st.Tally(ctx)).To(BeEmpty())
		})

		It("allows re-registering a removed candidate", func() {
			_, err := st.RegisterCandidate(ctx, candidate(ann, "x"))
			Expect(err).NotTo(HaveOccurred())
			_, err = st.RemoveCandidate(ctx, ann)
			Expect(err).NotTo(HaveOccurred())

			_, err = st.RegisterCandidate(ctx, candidate(ann, "again"))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("#RegisterVoter", func() {
		It("creates a voter that can be looked up", func() {
			id, err := st.RegisterVoter(ctx, bob)
			Expect(err).NotTo(HaveOccurred())

			got, err := st.GetVoter(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(id))
			Expect(got.Group).To(Equal("1a"))
		})

		It("rejects an unknown group", func() {
			_, err := st.RegisterVoter(ctx, person("Bob", "X", "9z"))
			Expect(err).To(MatchError(store.ErrVoterGroup))
		})

		It("rejects a duplicate identity", func() {
			_, err := st.RegisterVoter(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			_, err = st.RegisterVoter(ctx, bob)
			Expect(err).To(MatchError(store.ErrVoterExists))
		})

		It("lists voters by group", func() {
			for _, v := range []models.Identity{person("Cid", "Y", "1b"), bob} {
				_, err := st.RegisterVoter(ctx, v)
				Expect(err).NotTo(HaveOccurred())
			}

			voters, err := st.ListVoters(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(voters).To(HaveLen(2))
			Expect(voters[0].Name).To(Equal("Bob"))
			Expect(voters[1].Group).To(Equal("1b"))
		})
	})

	Describe("#GetVoter", func() {
		It("distinguishes an unknown group from an unknown voter", func() {
			_, err := st.GetVoter(ctx, person("Bob", "X", "9z"))
			Expect(err).To(MatchError(store.ErrVoterGroup))

			_, err = st.GetVoter(ctx, bob)
			Expect(err).To(MatchError(store.ErrVoterNotFound))
		})
	})
})
