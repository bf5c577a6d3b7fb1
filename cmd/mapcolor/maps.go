package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mapcolor/builder"
	"github.com/katalvlaran/mapcolor/core"
)

// loadMap reads a map file. .json files go through the JSON decoder, .txt
// files are character paintings, anything else goes through the YAML decoder
// (which accepts JSON as well).
func loadMap(path string) (*core.Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	var m *core.Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		m, err = core.ParseJSON(raw)
	case ".txt":
		m, err = builder.BuildMap(nil, nil, builder.Painting(paintingRows(raw), builder.Conn4))
	default:
		m, err = core.ParseYAML(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}

	return m, nil
}

// warnAsymmetric logs one-sided borders and undeclared neighbours. The search
// uses the lists as given, so such maps may be "solved" with touching regions
// sharing a color.
func warnAsymmetric(log *slog.Logger, m *core.Map) {
	if !m.Symmetric() {
		log.Warn("map has one-sided borders; only each region's own list is checked")
	}
	if und := m.Undeclared(); len(und) > 0 {
		log.Warn("map lists neighbours that are not regions; they are never colored", "neighbours", und)
	}
}

// paintingRows splits a drawing into rows, dropping trailing blank lines and
// carriage returns.
func paintingRows(raw []byte) []string {
	rows := strings.Split(strings.ReplaceAll(string(raw), "\r", ""), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return rows
}
