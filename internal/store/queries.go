package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
)

type User struct {
	ID          string
	Email       string
	Password    string
	DisplayName string
	CreatedAt   time.Time
}

type Board struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BoardMember struct {
	BoardID     string
	UserID      string
	Role        Role
	DisplayName string
	Email       string
}

type Snapshot struct {
	ID        string
	BoardID   string
	Version   int32
	Document  json.RawMessage
	CreatedAt time.Time
}

func (s *Store) CreateUser(ctx context.Context, id, email, password, displayName string) (User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password, display_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password, display_name, created_at`,
		id, email, password, displayName)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, password, display_name, created_at FROM users WHERE email = $1`, email)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, password, display_name, created_at FROM users WHERE id = $1`, id)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) CreateBoard(ctx context.Context, id, name, ownerID string) (Board, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO boards (id, name, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, owner_id, created_at, updated_at`,
		id, name, ownerID)

	var b Board
	if err := row.Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (s *Store) GetBoard(ctx context.Context, id string) (Board, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, owner_id, created_at, updated_at FROM boards WHERE id = $1`, id)

	var b Board
	if err := row.Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (s *Store) ListBoardsForUser(ctx context.Context, userID string) ([]Board, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT b.id, b.name, b.owner_id, b.created_at, b.updated_at
		 FROM boards b
		 JOIN board_members m ON m.board_id = b.id
		 WHERE m.user_id = $1
		 ORDER BY b.updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (s *Store) DeleteBoard(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	return err
}

func (s *Store) AddBoardMember(ctx context.Context, boardID, userID string, role Role) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO board_members (board_id, user_id, role)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (board_id, user_id) DO NOTHING`,
		boardID, userID, role)
	return err
}

func (s *Store) GetBoardMember(ctx context.Context, boardID, userID string) (BoardMember, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT board_id, user_id, role FROM board_members
		 WHERE board_id = $1 AND user_id = $2`, boardID, userID)

	var m BoardMember
	if err := row.Scan(&m.BoardID, &m.UserID, &m.Role); err != nil {
		return BoardMember{}, err
	}
	return m, nil
}

func (s *Store) ListBoardMembers(ctx context.Context, boardID string) ([]BoardMember, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT m.board_id, m.user_id, m.role, u.display_name, u.email
		 FROM board_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.board_id = $1`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []BoardMember
	for rows.Next() {
		var m BoardMember
		if err := rows.Scan(&m.BoardID, &m.UserID, &m.Role, &m.DisplayName, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) RemoveBoardMember(ctx context.Context, boardID, userID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`, boardID, userID)
	return err
}

func (s *Store) CreateSnapshot(ctx context.Context, id, boardID string, version int32, doc json.RawMessage) (Snapshot, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO snapshots (id, board_id, version, document)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, board_id, version, document, created_at`,
		id, boardID, version, doc)

	var snap Snapshot
	if err := row.Scan(&snap.ID, &snap.BoardID, &snap.Version, &snap.Document, &snap.CreatedAt); err != nil {
		return Snapshot{}, fmt.Errorf("create snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) GetLatestSnapshot(ctx context.Context, boardID string) (Snapshot, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, board_id, version, document, created_at FROM snapshots
		 WHERE board_id = $1
		 ORDER BY version DESC
		 LIMIT 1`, boardID)

	var snap Snapshot
	if err := row.Scan(&snap.ID, &snap.BoardID, &snap.Version, &snap.Document, &snap.CreatedAt); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
