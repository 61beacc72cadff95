package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/njvack/gazehound/logging"
)

const documentVersion = 1

// document is the on-disk dataset shape. A view data entry is either an
// inline sample array or a string naming an iView sample file, resolved
// relative to the dataset file.
type document struct {
	Version          int                                   `json:"version"`
	SamplesPerSecond float64                               `json:"samples_per_second"`
	Stimuli          []string                              `json:"stimuli"`
	StimulusImages   map[string]string                     `json:"stimulus_images,omitempty"`
	Groups           []string                              `json:"groups"`
	Viewers          []documentViewer                      `json:"viewers"`
	ViewData         map[string]map[string]json.RawMessage `json:"view_data"`
}

type documentViewer struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

// UnmarshalJSON decodes a scan path from an array of [x, y] pairs where a
// null element marks an absent sample. Anything other than exactly two
// coordinates is rejected; gazehound exports carry (x, y, time) triples
// and silently truncating them would hide a wrong export.
func (p *ScanPath) UnmarshalJSON(data []byte) error {
	var raw []*[]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	path := make(ScanPath, len(raw))
	for i, pair := range raw {
		if pair == nil {
			continue
		}
		if len(*pair) != 2 {
			return fmt.Errorf("%w: sample %d has %d coordinates (want 2)", ErrMalformed, i, len(*pair))
		}
		path[i] = Point{X: (*pair)[0], Y: (*pair)[1], Valid: true}
	}
	*p = path
	return nil
}

// Load reads, resolves and validates a dataset document from path.
func Load(path string) (*ViewDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("%w: unsupported dataset version %d (want %d)", ErrMalformed, doc.Version, documentVersion)
	}

	d := &ViewDataset{
		Stimuli:          doc.Stimuli,
		StimulusImages:   doc.StimulusImages,
		ViewerGroups:     doc.Groups,
		SamplesPerSecond: doc.SamplesPerSecond,
		ViewData:         make(map[string]map[string]ScanPath, len(doc.ViewData)),
	}
	d.Viewers = make([]Viewer, len(doc.Viewers))
	for i, v := range doc.Viewers {
		d.Viewers[i] = Viewer{Name: v.Name, Group: v.Group}
	}
	d.buildDirectory()

	base := filepath.Dir(path)
	for stim, byViewer := range doc.ViewData {
		resolved := make(map[string]ScanPath, len(byViewer))
		for name, entry := range byViewer {
			sp, err := resolveEntry(entry, base)
			if err != nil {
				return nil, fmt.Errorf("view data for %q/%q: %w", stim, name, err)
			}
			resolved[name] = sp
		}
		d.ViewData[stim] = resolved
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	logging.Infof("dataset: loaded %d stimuli, %d viewers from %s", len(d.Stimuli), len(d.Viewers), path)
	return d, nil
}

func resolveEntry(entry json.RawMessage, base string) (ScanPath, error) {
	if len(entry) > 0 && entry[0] == '"' {
		var ref string
		if err := json.Unmarshal(entry, &ref); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return LoadIViewFile(filepath.Join(base, ref))
	}
	var sp ScanPath
	if err := json.Unmarshal(entry, &sp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return sp, nil
}
