package db

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type gormSession struct {
	db *gorm.DB
	tx *gorm.DB
}

func (s *gormSession) begin() (*gorm.DB, error) {
	if s.tx != nil {
		return s.tx, nil
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	s.tx = tx

	return tx, nil
}

func (s *gormSession) Add(record any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	if err := tx.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert record: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (s *gormSession) GetOneBy(column string, value any, dest any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	query := fmt.Sprintf("%s = ?", column)
	err = tx.Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}

	return nil
}

func (s *gormSession) GetAll(dest any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}

	return nil
}

func (s *gormSession) Update(record any, column string, value any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	if err := tx.Model(record).Update(column, value).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("update %q: %w", column, ErrDuplicateKey)
		}
		return fmt.Errorf("update %q: %w", column, err)
	}

	return nil
}

func (s *gormSession) Delete(record any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	if err := tx.Delete(record).Error; err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}

// Reload refreshes record from the database by its primary key.
func (s *gormSession) Reload(record any) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}

	err = tx.First(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("reload record: %w", err)
	}

	return nil
}

func (s *gormSession) Commit() error {
	if s.tx == nil {
		return nil
	}

	err := s.tx.Commit().Error
	s.tx = nil
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (s *gormSession) Rollback() error {
	if s.tx == nil {
		return nil
	}

	err := s.tx.Rollback().Error
	s.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}

	return nil
}

// Close discards whatever the session has not committed.
func (s *gormSession) Close() error {
	return s.Rollback()
}
