package theme

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/mmuldo/distinct/colorspace"
	"github.com/pkg/errors"
)

// Theme is the template context for a desktop theme: color0..colorN as hex
// strings plus any extra options.
type Theme map[string]interface{}

type byDarkness []colorspace.Lab

func (cs byDarkness) Len() int           { return len(cs) }
func (cs byDarkness) Less(i, j int) bool { return cs[i].L < cs[j].L }
func (cs byDarkness) Swap(i, j int)      { cs[i], cs[j] = cs[j], cs[i] }

//**exported functions**//
// Create creates a theme from colors, ordered dark to light, and other options.
// Options override generated keys.
func Create(colors []colorspace.Lab, opts map[string]interface{}) Theme {
	t := make(Theme)

	sorted := make([]colorspace.Lab, len(colors))
	copy(sorted, colors)
	sort.Stable(byDarkness(sorted))

	for k, c := range sorted {
		t["color"+strconv.Itoa(k)] = colorspace.LabToRGB(c).Hex()
	}
	t["count"] = len(sorted)

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, len(sorted))

	return t
}

// Load reads a theme saved as JSON.
func Load(path string) (Theme, error) {
	f, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, errors.Wrap(e, "read theme")
	}

	t := make(Theme)
	if e = json.Unmarshal(f, &t); e != nil {
		return nil, errors.Wrapf(e, "parse theme %s", path)
	}

	return t, nil
}

// Save writes t as JSON to path, creating parent directories.
func (t Theme) Save(path string) error {
	b, e := json.MarshalIndent(t, "", "  ")
	if e != nil {
		return errors.Wrap(e, "encode theme")
	}

	if e = os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return errors.Wrap(e, "create theme dir")
	}

	return errors.Wrap(ioutil.WriteFile(path, b, 0644), "write theme")
}

//**helper functions**//
func setDefaults(t Theme, n int) {
	if n == 0 {
		return
	}

	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color"+strconv.Itoa(n-1)]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}
}
