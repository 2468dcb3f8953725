// Package content gathers candidate knowledge for the assistant from the
// bundled static dataset, the live database and a local documents directory,
// and normalizes everything into a uniform shape.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/soruj/portfolio-assistant/internal/types"
)

//go:embed dataset.json
var datasetFile embed.FS

// Dataset is the bundled static knowledge base. It is the always-available
// baseline that database and filesystem sources are merged into.
type Dataset struct {
	Profile   types.Profile         `json:"profile"`
	Skills    []types.SkillCategory `json:"skills"`
	Projects  []types.Project       `json:"projects"`
	Documents []types.Document      `json:"documents"`
}

var (
	dataset     *Dataset
	datasetOnce sync.Once
	datasetErr  error
)

// StaticDataset returns the embedded dataset, parsed once per process.
func StaticDataset() (*Dataset, error) {
	datasetOnce.Do(func() {
		data, err := datasetFile.ReadFile("dataset.json")
		if err != nil {
			datasetErr = fmt.Errorf("failed to read embedded dataset: %w", err)
			return
		}
		var d Dataset
		if err := json.Unmarshal(data, &d); err != nil {
			datasetErr = fmt.Errorf("failed to parse embedded dataset: %w", err)
			return
		}
		dataset = &d
	})
	return dataset, datasetErr
}
