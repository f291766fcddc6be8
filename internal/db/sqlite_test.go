package db_test

import (
	"context"
	"path/filepath"
	"userctl/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"go.uber.org/zap"
)

var _ = Describe("SQLite", func() {
	var (
		sqliteDB *db.GormDB
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		sqliteDB, err = db.Open(db.DriverSQLite, filepath.Join(GinkgoT().TempDir(), "users.db"), zap.NewNop().Sugar())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(sqliteDB.Close)

		Expect(sqliteDB.MigrateModels(&Test{})).To(Succeed())
	})

	It("should assign an id on commit and reload it", func() {
		session := sqliteDB.NewSession(ctx)
		defer session.Close()

		record := &Test{Username: "bob"}
		Expect(session.Add(record)).To(Succeed())
		Expect(session.Commit()).To(Succeed())
		Expect(session.Reload(record)).To(Succeed())
		Expect(record.ID).NotTo(BeZero())

		var found Test
		Expect(session.GetOneBy("username", "bob", &found)).To(Succeed())
		Expect(found).To(Equal(*record))
	})

	It("should translate a unique violation into ErrDuplicateKey", func() {
		first := sqliteDB.NewSession(ctx)
		Expect(first.Add(&Test{Username: "bob"})).To(Succeed())
		Expect(first.Commit()).To(Succeed())
		Expect(first.Close()).To(Succeed())

		second := sqliteDB.NewSession(ctx)
		Expect(second.Add(&Test{Username: "bob"})).To(MatchError(db.ErrDuplicateKey))
		Expect(second.Rollback()).To(Succeed())
		Expect(second.Close()).To(Succeed())

		session := sqliteDB.NewSession(ctx)
		defer session.Close()
		var all []Test
		Expect(session.GetAll(&all)).To(Succeed())
		Expect(all).To(HaveLen(1))
	})

	It("should discard uncommitted work on close", func() {
		session := sqliteDB.NewSession(ctx)
		Expect(session.Add(&Test{Username: "bob"})).To(Succeed())
		Expect(session.Close()).To(Succeed())

		check := sqliteDB.NewSession(ctx)
		defer check.Close()
		var found Test
		Expect(check.GetOneBy("username", "bob", &found)).To(MatchError(db.ErrNotFound))
	})

	It("should drop the table with its rows", func() {
		session := sqliteDB.NewSession(ctx)
		Expect(session.Add(&Test{Username: "bob"})).To(Succeed())
		Expect(session.Commit()).To(Succeed())
		Expect(session.Close()).To(Succeed())

		Expect(sqliteDB.DropModels(&Test{})).To(Succeed())
		Expect(sqliteDB.MigrateModels(&Test{})).To(Succeed())

		check := sqliteDB.NewSession(ctx)
		defer check.Close()
		var all []Test
		Expect(check.GetAll(&all)).To(Succeed())
		Expect(all).To(BeEmpty())
	})
})
