package database

import (
	"database/sql"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vislib-axis/internal/types"
)

// ErrPresetNotFound is returned when no preset has the requested name.
var ErrPresetNotFound = errors.New("preset not found")

const presetColumns = `id, name, y_min, y_max, mode, default_y_extents, width, height, created_at`

// SavePreset inserts a preset or replaces the one with the same name.
func SavePreset(p types.Preset) error {
	query := `
	INSERT INTO presets (name, y_min, y_max, mode, default_y_extents, width, height)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		y_min = excluded.y_min,
		y_max = excluded.y_max,
		mode = excluded.mode,
		default_y_extents = excluded.default_y_extents,
		width = excluded.width,
		height = excluded.height;`

	_, err := DB.Exec(query, p.Name, p.YMin, p.YMax, p.Mode, p.DefaultYExtents, p.Width, p.Height)
	if err != nil {
		return errors.Wrapf(err, "failed to save preset %s", p.Name)
	}

	log.Debugf("Preset saved: %s [%v, %v] mode=%s", p.Name, p.YMin, p.YMax, p.Mode)
	return nil
}

// GetPreset fetches a preset by name
func GetPreset(name string) (*types.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE name = ?;`

	p, err := scanPreset(DB.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, ErrPresetNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to get preset %s", name)
	}
	return p, nil
}

// ListPresets fetches all presets ordered by name
func ListPresets() ([]types.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets ORDER BY name;`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query presets")
	}
	defer rows.Close()

	var presets []types.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		presets = append(presets, *p)
	}
	return presets, rows.Err()
}

// DeletePreset removes a preset by name
func DeletePreset(name string) error {
	res, err := DB.Exec(`DELETE FROM presets WHERE name = ?;`, name)
	if err != nil {
		return errors.Wrapf(err, "failed to delete preset %s", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to count deleted presets")
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPreset(row scanner) (*types.Preset, error) {
	var p types.Preset
	err := row.Scan(&p.ID, &p.Name, &p.YMin, &p.YMax, &p.Mode, &p.DefaultYExtents, &p.Width, &p.Height, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
