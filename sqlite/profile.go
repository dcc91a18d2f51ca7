package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jkoval/driftex"
)

// Compile-time interface verification.
var _ driftex.ProfileService = (*ProfileService)(nil)

// ProfileService implements driftex.ProfileService using SQLite.
type ProfileService struct {
	db *DB
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *DB) *ProfileService {
	return &ProfileService{db: db}
}

// hashContent computes the xxHash of content as a hex string. Snapshots of
// the same profile with identical extracted data share a hash, which makes
// unchanged re-visits cheap to spot.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateProfile stores a new profile snapshot.
func (s *ProfileService) CreateProfile(ctx context.Context, profile *driftex.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	profile.ID = uuid.New().String()
	if profile.FetchedAt.IsZero() {
		profile.FetchedAt = time.Now().UTC()
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return driftex.Errorf(driftex.EINTERNAL, "failed to encode profile: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, url, fetched_at, data, data_hash)
		VALUES (?, ?, ?, ?, ?)
	`, profile.ID, profile.URL, profile.FetchedAt.Format(time.RFC3339), string(data), hashContent(string(data)))

	return err
}

// FindProfileByID retrieves a profile by ID.
func (s *ProfileService) FindProfileByID(ctx context.Context, id string) (*driftex.Profile, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM profiles WHERE id = ?
	`, id).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, driftex.Errorf(driftex.ENOTFOUND, "profile not found")
	}
	if err != nil {
		return nil, err
	}

	return decodeProfile(data)
}

// FindProfiles retrieves profiles matching the filter, newest first.
func (s *ProfileService) FindProfiles(ctx context.Context, filter driftex.ProfileFilter) ([]*driftex.Profile, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT data FROM profiles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*driftex.Profile
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		profile, err := decodeProfile(data)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// DeleteProfile permanently removes a profile.
func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return driftex.Errorf(driftex.ENOTFOUND, "profile not found")
	}
	return nil
}

func decodeProfile(data string) (*driftex.Profile, error) {
	var profile driftex.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, driftex.Errorf(driftex.EINTERNAL, "failed to decode profile: %v", err)
	}
	return &profile, nil
}
