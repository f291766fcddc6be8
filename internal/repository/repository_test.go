package repository_test

import (
	"context"
	"errors"
	"userctl/internal/db"
	dbfake "userctl/internal/db/fake"
	"userctl/internal/repository"
	"userctl/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo         *repository.UserRepository
		fakeDatabase *fake.Database
		fakeSession  *dbfake.Session
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		fakeDatabase = new(fake.Database)
		fakeSession = new(dbfake.Session)
		fakeDatabase.NewSessionReturns(fakeSession)
		repo = repository.NewUserRepository(fakeDatabase)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	stubUser := func(user repository.User) func(string, any, any) error {
		return func(column string, value any, dest any) error {
			u := dest.(*repository.User)
			*u = user
			return nil
		}
	}

	Describe("MigrateSchema", func() {
		When("migration succeeds", func() {
			It("should migrate the users table", func() {
				Expect(repo.MigrateSchema()).To(Succeed())

				Expect(fakeDatabase.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeDatabase.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeDatabase.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.MigrateSchema()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("ResetSchema", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.ResetSchema()
		})

		When("drop and migrate succeed", func() {
			It("should drop before recreating", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeDatabase.DropModelsCallCount()).To(Equal(1))
				Expect(fakeDatabase.DropModelsArgsForCall(0)[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(fakeDatabase.MigrateModelsCallCount()).To(Equal(1))
			})
		})

		When("drop fails", func() {
			BeforeEach(func() {
				fakeDatabase.DropModelsReturns(errors.New("drop error"))
			})

			It("should not migrate", func() {
				Expect(err).To(MatchError("drop table(s): drop error"))
				Expect(fakeDatabase.MigrateModelsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SeedUser", func() {
		var (
			user *repository.User
			err  error
		)

		BeforeEach(func() {
			user = &repository.User{Username: "bob", Email: "bob@mail.com", Password: "bobpass"}
		})

		JustBeforeEach(func() {
			err = repo.SeedUser(ctx, user)
		})

		When("the seed is stored", func() {
			BeforeEach(func() {
				fakeSession.ReloadStub = func(record any) error {
					record.(*repository.User).ID = 1
					return nil
				}
			})

			It("should add, commit, reload and close", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))

				Expect(fakeDatabase.NewSessionCallCount()).To(Equal(1))
				Expect(fakeSession.AddArgsForCall(0)).To(Equal(user))
				Expect(fakeSession.CommitCallCount()).To(Equal(1))
				Expect(fakeSession.ReloadArgsForCall(0)).To(Equal(user))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("commit fails", func() {
			BeforeEach(func() {
				fakeSession.CommitReturns(fakeErr)
			})

			It("should return the error and still close", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.ReloadCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{ID: 3, Username: "alice", Email: "alice@mail.com", Password: "secret"}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(testUser)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeSession.GetOneByCallCount()).To(Equal(1))
				col, val, _ := fakeSession.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeSession.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(fakeSession.CommitCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeSession.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("closing the session fails", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(testUser)
				fakeSession.CloseReturns(fakeErr)
			})

			It("should report the close error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("close session")))
			})
		})
	})

	Describe("GetAllUsers", func() {
		var (
			users []repository.User
			err   error
		)

		JustBeforeEach(func() {
			users, err = repo.GetAllUsers(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeSession.GetAllStub = func(dest any) error {
					u := dest.(*[]repository.User)
					*u = []repository.User{{ID: 1, Username: "bob"}, {ID: 2, Username: "carol"}}
					return nil
				}
			})

			It("should return all users", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
				Expect(users[1].Username).To(Equal("carol"))
			})
		})

		When("no users exist", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeSession.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(users).To(BeNil())
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user *repository.User
			err  error
		)

		BeforeEach(func() {
			user = &repository.User{Username: "alice", Email: "alice@mail.com", Password: "secret"}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the username is free", func() {
			It("should add and commit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSession.AddArgsForCall(0)).To(Equal(user))
				Expect(fakeSession.CommitCallCount()).To(Equal(1))
				Expect(fakeSession.RollbackCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeSession.AddReturns(db.ErrDuplicateKey)
			})

			It("should roll back and return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
				Expect(fakeSession.RollbackCallCount()).To(Equal(1))
				Expect(fakeSession.CommitCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("the rollback fails", func() {
			BeforeEach(func() {
				fakeSession.AddReturns(db.ErrDuplicateKey)
				fakeSession.RollbackReturns(fakeErr)
			})

			It("should return the rollback error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserExists))
			})
		})

		When("another database error occurs", func() {
			BeforeEach(func() {
				fakeSession.AddReturns(fakeErr)
			})

			It("should propagate it without rolling back explicitly", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.RollbackCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})
	})

	Describe("ChangeEmail", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{ID: 5, Username: "alice", Email: "old@mail.com"}
		})

		JustBeforeEach(func() {
			user, err = repo.ChangeEmail(ctx, "alice", "new@mail.com")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(testUser)
				fakeSession.UpdateStub = func(record any, column string, value any) error {
					record.(*repository.User).Email = value.(string)
					return nil
				}
			})

			It("should update the email and commit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(5)))
				Expect(user.Email).To(Equal("new@mail.com"))

				_, col, val := fakeSession.UpdateArgsForCall(0)
				Expect(col).To(Equal("email"))
				Expect(val).To(Equal("new@mail.com"))
				Expect(fakeSession.CommitCallCount()).To(Equal(1))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeSession.GetOneByReturns(db.ErrNotFound)
			})

			It("should not update anything", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(fakeSession.UpdateCallCount()).To(Equal(0))
				Expect(fakeSession.CommitCallCount()).To(Equal(0))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("update fails", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(testUser)
				fakeSession.UpdateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.CommitCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteUser(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(repository.User{ID: 8, Username: "alice"})
			})

			It("should delete and commit", func() {
				Expect(err).NotTo(HaveOccurred())
				deleted := fakeSession.DeleteArgsForCall(0).(*repository.User)
				Expect(deleted.ID).To(Equal(uint(8)))
				Expect(fakeSession.CommitCallCount()).To(Equal(1))
				Expect(fakeSession.CloseCallCount()).To(Equal(1))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeSession.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(fakeSession.DeleteCallCount()).To(Equal(0))
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeSession.GetOneByStub = stubUser(repository.User{ID: 8, Username: "alice"})
				fakeSession.DeleteReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSession.CommitCallCount()).To(Equal(0))
			})
		})
	})
})
