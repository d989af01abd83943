package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateFolder creates a new folder
func (db *DB) CreateFolder(ctx context.Context, folder *Folder) error {
	query := `INSERT INTO folders (label, icon, is_default) VALUES (:label, :icon, :is_default)`
	result, err := db.conn.NamedExecContext(ctx, query, folder)
	if err != nil {
		return fmt.Errorf("insert folder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	folder.ID = id
	return nil
}

// GetFolders retrieves all folders ordered by label
func (db *DB) GetFolders(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	query := `SELECT * FROM folders ORDER BY label`
	err := db.conn.SelectContext(ctx, &folders, query)
	if err != nil {
		return nil, fmt.Errorf("get folders: %w", err)
	}
	return folders, nil
}

// GetFolder retrieves a folder by ID
func (db *DB) GetFolder(ctx context.Context, id int64) (*Folder, error) {
	var folder Folder
	query := `SELECT * FROM folders WHERE id = ?`
	err := db.conn.GetContext(ctx, &folder, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("folder %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return &folder, nil
}

// GetDefaultFolder retrieves the default folder
func (db *DB) GetDefaultFolder(ctx context.Context) (*Folder, error) {
	var folder Folder
	query := `SELECT * FROM folders WHERE is_default = 1 LIMIT 1`
	err := db.conn.GetContext(ctx, &folder, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("default folder: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get default folder: %w", err)
	}
	return &folder, nil
}

// UpdateFolder updates a folder's label and icon
func (db *DB) UpdateFolder(ctx context.Context, folder *Folder) error {
	folder.UpdatedAt = time.Now()
	query := `UPDATE folders SET label = :label, icon = :icon, updated_at = :updated_at WHERE id = :id`
	result, err := db.conn.NamedExecContext(ctx, query, folder)
	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("folder %d: %w", folder.ID, ErrNotFound)
	}
	return nil
}

// DeleteFolder deletes a folder; feeds in it fall back to no folder
func (db *DB) DeleteFolder(ctx context.Context, id int64) error {
	query := `DELETE FROM folders WHERE id = ?`
	result, err := db.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("folder %d: %w", id, ErrNotFound)
	}
	return nil
}

// EnsureDefaultFolder creates the default folder when missing and adopts feeds
// that have no folder assigned
func (db *DB) EnsureDefaultFolder(ctx context.Context) error {
	folder, err := db.GetDefaultFolder(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		folder = &Folder{Label: "Default", Icon: "folder", IsDefault: true}
		if err := db.CreateFolder(ctx, folder); err != nil {
			return err
		}
	}

	query := `UPDATE feeds SET folder_id = ? WHERE folder_id IS NULL`
	if _, err := db.conn.ExecContext(ctx, query, folder.ID); err != nil {
		return fmt.Errorf("assign default folder: %w", err)
	}
	return nil
}
