package redcap

import (
	"context"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
)

// DataFrameOptions controls the csv-to-dataframe conversion applied by the
// *DataFrame export methods.
type DataFrameOptions struct {
	// DetectTypes enables gota's column type detection. Off by default so
	// values stay strings exactly as the server sent them.
	DetectTypes bool

	// SortColumns overrides the default ordering columns. For record and
	// report exports the default is the identifier field, plus
	// redcap_event_name on longitudinal projects, which keys the table by
	// (identifier, event) pairs.
	SortColumns []string
}

// toDataFrame parses csv text into a gota dataframe and applies the
// ordering columns. An empty body yields an empty dataframe, matching the
// server's "no rows" answer.
func toDataFrame(csvText string, opts *DataFrameOptions, defaultSort []string) (dataframe.DataFrame, error) {
	if strings.TrimSpace(csvText) == "" {
		return dataframe.DataFrame{}, nil
	}
	if opts == nil {
		opts = &DataFrameOptions{}
	}

	df := dataframe.ReadCSV(strings.NewReader(csvText),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(opts.DetectTypes),
	)
	if df.Err != nil {
		return df, &rcrequest.DecodeError{Format: "csv", Err: df.Err}
	}

	sortCols := opts.SortColumns
	if sortCols == nil {
		sortCols = defaultSort
	}
	var orders []dataframe.Order
	for _, col := range sortCols {
		if slices.Contains(df.Names(), col) {
			orders = append(orders, dataframe.Sort(col))
		}
	}
	if len(orders) > 0 {
		df = df.Arrange(orders...)
		if df.Err != nil {
			return df, &rcrequest.DecodeError{Format: "csv", Err: df.Err}
		}
	}
	return df, nil
}

// recordSortColumns resolves the default ordering for record-shaped
// dataframes from the cached snapshot.
func (p *Project) recordSortColumns(ctx context.Context) ([]string, error) {
	snap, err := p.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.longitudinal {
		return []string{snap.defField, "redcap_event_name"}, nil
	}
	return []string{snap.defField}, nil
}
