package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// MatchResult is one finished board-game round, seen from the human side.
type MatchResult struct {
	ID        int64
	MatchID   string // UUID, generated by SaveMatch when empty
	GameID    string
	Mode      core.MatchMode
	Outcome   core.Outcome
	Moves     int
	CreatedAt time.Time
}

// Record is the win/loss/draw tally for a game.
type Record struct {
	Wins   int
	Losses int
	Draws  int
}

// Played returns the number of decided and drawn rounds.
func (r Record) Played() int {
	return r.Wins + r.Losses + r.Draws
}

// SaveMatch records a finished round and returns its match ID.
// Rounds without an outcome are rejected.
func (s *Store) SaveMatch(m MatchResult) (string, error) {
	if m.Outcome == core.OutcomeNone {
		return "", fmt.Errorf("storage: match for %s has no outcome", m.GameID)
	}
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches (match_id, game_id, mode, outcome, moves)
		 VALUES (?, ?, ?, ?, ?)`,
		m.MatchID, m.GameID, m.Mode.String(), m.Outcome.String(), m.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return m.MatchID, nil
}

// RecentMatches returns the latest limit rounds for a game, newest first.
// A non-positive limit means 20.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, game_id, mode, outcome, moves, created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var mode, outcome string
		var createdAt any
		if err := rows.Scan(&m.ID, &m.MatchID, &m.GameID, &mode, &outcome, &m.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Mode = core.ParseMatchMode(mode)
		m.Outcome = parseOutcome(outcome)
		m.CreatedAt = parseTime(createdAt)
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// MatchRecord tallies wins, losses and draws for a game.
func (s *Store) MatchRecord(gameID string) (Record, error) {
	var r Record
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'loss' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'draw' THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&r.Wins, &r.Losses, &r.Draws)
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot query match record: %w", err)
	}
	return r, nil
}

func parseOutcome(s string) core.Outcome {
	switch s {
	case "win":
		return core.OutcomeWin
	case "loss":
		return core.OutcomeLoss
	case "draw":
		return core.OutcomeDraw
	default:
		return core.OutcomeNone
	}
}
