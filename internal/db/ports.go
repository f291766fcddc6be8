package db

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Session is a scoped unit of work against the database. A transaction is
// begun by the first statement and ended by Commit or Rollback; the next
// statement begins a new one. Close must be called on every exit path.
//
//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Add(record any) error
	GetOneBy(column string, value any, dest any) error
	GetAll(dest any) error
	Update(record any, column string, value any) error
	Delete(record any) error
	Reload(record any) error
	Commit() error
	Rollback() error
	Close() error
}
