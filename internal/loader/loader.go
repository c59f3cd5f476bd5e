// Package loader reads campaign input files (CSV or XLSX) into tables.
package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// LoadTable reads a tabular file into a Table, dispatching on extension.
// The first row is the header.
func LoadTable(path string) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, eris.Errorf("loader: unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadPair reads the reach and buyers files concurrently. The two inputs are
// independent, so a parse failure in one does not wait on the other.
func LoadPair(ctx context.Context, reachPath, buyersPath string) (reach, buyers *model.Table, err error) {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, loadErr := LoadTable(reachPath)
		if loadErr != nil {
			return eris.Wrap(loadErr, "loader: reach file")
		}
		reach = t
		return nil
	})
	g.Go(func() error {
		t, loadErr := LoadTable(buyersPath)
		if loadErr != nil {
			return eris.Wrap(loadErr, "loader: buyers file")
		}
		buyers = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return reach, buyers, nil
}
