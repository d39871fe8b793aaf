package datasets

import (
	"io"

	"github.com/go-gota/gota/dataframe"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
)

// ReadCSV loads a feature table from CSV with a header row. Column types
// are detected unless opts say otherwise.
func ReadCSV(r io.Reader, opts ...dataframe.LoadOption) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, opts...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "read csv")
	}

	log.GetLoggerWithName("datasets").Debug("Read CSV",
		log.OperationKey, log.OperationReadCSV,
		log.SamplesKey, df.Nrow(),
		log.FeaturesKey, df.Ncol(),
	)
	return df, nil
}
