package handler_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"userctl/internal/cli/handler"
	"userctl/internal/cli/handler/fake"
	"userctl/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("UserHandler", func() {
	var (
		fakeService  *fake.UserService
		fakeLogger   *zap.SugaredLogger
		logEntries   *observer.ObservedLogs
		connect      handler.Connector
		connectCount int
		releaseCount int
		userHdlr     *handler.UserHandler
		out          *bytes.Buffer
		args         []string
		err          error
		fakeErr      error
		bob          core.UserRecord
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		var logCore zapcore.Core
		logCore, logEntries = observer.New(zapcore.DebugLevel)
		fakeLogger = zap.New(logCore).Sugar()
		fakeService = new(fake.UserService)
		connectCount, releaseCount = 0, 0
		connect = func() (handler.UserService, func() error, error) {
			connectCount++
			return fakeService, func() error {
				releaseCount++
				return nil
			}, nil
		}
		out = new(bytes.Buffer)
		bob = core.UserRecord{ID: 1, Username: "bob", Email: "bob@mail.com", Password: "bobpass"}
	})

	JustBeforeEach(func() {
		userHdlr = handler.NewUserHandler(fakeLogger, connect)
		root := handler.NewRootCommand(userHdlr)
		root.SetOut(out)
		root.SetErr(new(bytes.Buffer))
		root.SetArgs(args)
		err = root.ExecuteContext(context.Background())
	})

	Describe("store lifecycle", func() {
		When("a user command runs", func() {
			BeforeEach(func() {
				args = []string{"get-all-users"}
			})

			It("should open the store once and release it on close", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(connectCount).To(Equal(1))
				Expect(releaseCount).To(Equal(0))
				Expect(userHdlr.Close()).To(Succeed())
				Expect(releaseCount).To(Equal(1))
				Expect(userHdlr.Close()).To(Succeed())
				Expect(releaseCount).To(Equal(1))
			})
		})

		When("the store cannot be opened", func() {
			BeforeEach(func() {
				args = []string{"get-user", "bob"}
				connect = func() (handler.UserService, func() error, error) {
					connectCount++
					return nil, nil, fakeErr
				}
			})

			It("should not run the command", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(connectCount).To(Equal(1))
				Expect(fakeService.GetUserCallCount()).To(Equal(0))
				Expect(userHdlr.Close()).To(Succeed())
			})
		})

		Context("with built-in commands", func() {
			BeforeEach(func() {
				args = []string{"help"}
			})

			DescribeTable("the store stays closed",
				func(builtin ...string) {
					root := handler.NewRootCommand(handler.NewUserHandler(fakeLogger, connect))
					root.SetOut(new(bytes.Buffer))
					root.SetErr(new(bytes.Buffer))
					root.SetArgs(builtin)
					Expect(root.ExecuteContext(context.Background())).To(Succeed())
					Expect(connectCount).To(Equal(0))
					Expect(fakeService.EnsureSchemaCallCount()).To(Equal(0))
				},
				Entry("help flag", "--help"),
				Entry("help command", "help"),
				Entry("help for a user command", "help", "get-user"),
				Entry("user command help flag", "get-user", "--help"),
				Entry("completion script", "completion", "bash"),
			)
		})
	})

	Describe(handler.Initialize, func() {
		BeforeEach(func() {
			args = []string{"initialize"}
		})

		When("initialization succeeds", func() {
			BeforeEach(func() {
				fakeService.InitializeReturns(bob, nil)
			})

			It("should report success without migrating first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("Database Initialized\n"))
				Expect(fakeService.InitializeCallCount()).To(Equal(1))
				Expect(fakeService.EnsureSchemaCallCount()).To(Equal(0))
			})
		})

		When("initialization fails", func() {
			BeforeEach(func() {
				fakeService.InitializeReturns(core.UserRecord{}, fakeErr)
			})

			It("should propagate the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(out.String()).To(BeEmpty())
			})
		})
	})

	Describe(handler.GetUser, func() {
		BeforeEach(func() {
			args = []string{"get-user", "bob"}
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(bob, nil)
			})

			It("should print the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("username='bob' email='bob@mail.com' password='bobpass' id=1\n"))
				Expect(fakeService.EnsureSchemaCallCount()).To(Equal(1))
				_, username := fakeService.GetUserArgsForCall(0)
				Expect(username).To(Equal("bob"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				args = []string{"get-user", "ghost"}
				fakeService.GetUserReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should report not found and exit normally", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("ghost not found!\n"))
			})
		})

		DescribeTable("usernames absent from the store",
			func(username string) {
				fakeService.GetUserReturns(core.UserRecord{}, core.ErrUserNotFound)
				root := handler.NewRootCommand(handler.NewUserHandler(fakeLogger, connect))
				buf := new(bytes.Buffer)
				root.SetOut(buf)
				root.SetArgs([]string{"get-user", username})
				Expect(root.ExecuteContext(context.Background())).To(Succeed())
				Expect(buf.String()).To(Equal(username + " not found!\n"))
				_, looked := fakeService.GetUserArgsForCall(fakeService.GetUserCallCount() - 1)
				Expect(looked).To(Equal(username))
			},
			Entry("empty", ""),
			Entry("over the column limit", strings.Repeat("a", 300)),
			Entry("multi-byte characters", strings.Repeat("é", 200)),
		)

		When("the argument is missing", func() {
			BeforeEach(func() {
				args = []string{"get-user"}
			})

			It("should fail argument parsing", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeService.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the schema cannot be created", func() {
			BeforeEach(func() {
				fakeService.EnsureSchemaReturns(fakeErr)
			})

			It("should not run the command", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeService.GetUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe(handler.GetAllUsers, func() {
		BeforeEach(func() {
			args = []string{"get-all-users"}
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeService.GetAllUsersReturns([]core.UserRecord{
					bob,
					{ID: 2, Username: "carol", Email: "carol@mail.com", Password: "carolpass"},
				}, nil)
			})

			It("should print one user per line", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal(
					"username='bob' email='bob@mail.com' password='bobpass' id=1\n" +
						"username='carol' email='carol@mail.com' password='carolpass' id=2\n"))
			})
		})

		When("there are no users", func() {
			BeforeEach(func() {
				fakeService.GetAllUsersReturns([]core.UserRecord{}, nil)
			})

			It("should report that no users were found", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("No users found\n"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetAllUsersReturns(nil, fakeErr)
			})

			It("should propagate the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe(handler.ChangeEmail, func() {
		BeforeEach(func() {
			args = []string{"change-email", "bob", "new@mail.com"}
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.ChangeEmailReturns(core.UserRecord{ID: 1, Username: "bob", Email: "new@mail.com"}, nil)
			})

			It("should report the new email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("Updated bob's email to new@mail.com\n"))
				_, username, email := fakeService.ChangeEmailArgsForCall(0)
				Expect(username).To(Equal("bob"))
				Expect(email).To(Equal("new@mail.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.ChangeEmailReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should report the failure", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("bob not found! Unable to update email.\n"))
			})
		})

		When("the username is empty", func() {
			BeforeEach(func() {
				args = []string{"change-email", "", "new@mail.com"}
				fakeService.ChangeEmailReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should look it up and report the failure", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal(" not found! Unable to update email.\n"))
				Expect(fakeService.ChangeEmailCallCount()).To(Equal(1))
			})
		})
	})

	Describe(handler.CreateUser, func() {
		BeforeEach(func() {
			args = []string{"create-user", "alice", "alice@mail.com", "secret"}
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeService.CreateUserReturns(core.UserRecord{ID: 2, Username: "alice", Email: "alice@mail.com", Password: "secret"}, nil)
			})

			It("should print the created user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("username='alice' email='alice@mail.com' password='secret' id=2\n"))
				_, msg := fakeService.CreateUserArgsForCall(0)
				Expect(msg).To(Equal(core.NewUserMessage{Username: "alice", Email: "alice@mail.com", Password: "secret"}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.CreateUserReturns(core.UserRecord{}, core.ErrUserExists)
			})

			It("should report the conflict and exit normally", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("Error: A user with the username 'alice' already exists.\n"))
			})
		})

		When("the username is blank", func() {
			BeforeEach(func() {
				args = []string{"create-user", "", "a@mail.com", "pw"}
			})

			It("should report invalid arguments without reaching the service", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(HavePrefix("Error: invalid arguments: username: cannot be blank"))
				Expect(fakeService.CreateUserCallCount()).To(Equal(0))
				entries := logEntries.FilterMessage("invalid command arguments").All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Level).To(Equal(zapcore.InfoLevel))
			})
		})

		When("the username exceeds the column limit", func() {
			BeforeEach(func() {
				args = []string{"create-user", strings.Repeat("é", 256), "a@mail.com", "pw"}
			})

			It("should report invalid arguments without reaching the service", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(HavePrefix("Error: invalid arguments: username: the length must be between 1 and 255"))
				Expect(fakeService.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.CreateUserReturns(core.UserRecord{}, fakeErr)
			})

			It("should propagate the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(out.String()).To(BeEmpty())
			})
		})
	})

	Describe(handler.DeleteUser, func() {
		BeforeEach(func() {
			args = []string{"delete-user", "bob"}
		})

		When("the user exists", func() {
			It("should report the deletion", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("Deleted user bob\n"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrUserNotFound)
			})

			It("should report the failure", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("bob not found! Unable to delete user.\n"))
			})
		})

		When("the username is longer than any stored one", func() {
			BeforeEach(func() {
				args = []string{"delete-user", strings.Repeat("é", 300)}
				fakeService.DeleteUserReturns(core.ErrUserNotFound)
			})

			It("should look it up and report the failure", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal(strings.Repeat("é", 300) + " not found! Unable to delete user.\n"))
				Expect(fakeService.DeleteUserCallCount()).To(Equal(1))
			})
		})
	})
})
