package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Branded manifest values.
const (
	BrandedLicense       = "CC-BY-4.0"
	BrandedLicenseSuffix = " OR " + BrandedLicense
	BrandedBugsEmail     = "arc@mulesoft.com"
)

// PatchManifests applies the branded license and bug-report contact to the
// package manifest at packagePath and the bower manifest at bowerPath.
// Key order is preserved and both files are written with two-space
// indentation.
func PatchManifests(fsys afero.Fs, packagePath, bowerPath string) error {
	if err := patchManifest(fsys, packagePath, true); err != nil {
		return err
	}
	return patchManifest(fsys, bowerPath, false)
}

func patchManifest(fsys afero.Fs, path string, setBugs bool) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return &ManifestError{Path: path, Err: err}
	}

	if !gjson.ValidBytes(data) {
		return &ManifestError{Path: path, Err: errors.New("invalid JSON")}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return &ManifestError{Path: path, Err: errors.New("expected a JSON object")}
	}

	data, err = brandLicense(data)
	if err != nil {
		return &ManifestError{Path: path, Err: err}
	}
	if setBugs {
		data, err = brandBugs(data)
		if err != nil {
			return &ManifestError{Path: path, Err: err}
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return &ManifestError{Path: path, Err: err}
	}
	out.WriteByte('\n')

	if err := afero.WriteFile(fsys, path, out.Bytes(), 0644); err != nil {
		return &ManifestError{Path: path, Err: err}
	}
	return nil
}

func brandLicense(data []byte) ([]byte, error) {
	license := BrandedLicense
	if current := gjson.GetBytes(data, "license"); current.Exists() {
		if current.Type != gjson.String {
			return nil, fmt.Errorf("license is not a string: %s", current.Raw)
		}
		license = current.String() + BrandedLicenseSuffix
	}
	return sjson.SetBytes(data, "license", license)
}

func brandBugs(data []byte) ([]byte, error) {
	bugs := gjson.GetBytes(data, "bugs")

	var err error
	switch {
	case bugs.IsObject():
	case bugs.Type == gjson.String:
		// npm accepts a bare URL for bugs.
		data, err = sjson.SetRawBytes(data, "bugs", []byte("{}"))
		if err != nil {
			return nil, err
		}
		data, err = sjson.SetBytes(data, "bugs.url", bugs.String())
		if err != nil {
			return nil, err
		}
	case bugs.Exists():
		data, err = sjson.SetRawBytes(data, "bugs", []byte("{}"))
		if err != nil {
			return nil, err
		}
	}

	return sjson.SetBytes(data, "bugs.email", BrandedBugsEmail)
}
