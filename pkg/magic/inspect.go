// pkg/magic/inspect.go
package magic

import (
	"archive/tar"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sassoftware/go-rpmutils"
	"github.com/ulikunitz/xz"
)

// Meta is the identity block read from inside a package artifact.
type Meta struct {
	Name         string
	Version      string
	Architecture string
	Description  string
}

// InspectRPM reads the identity tags from an rpm package header. The
// payload is never unpacked.
func InspectRPM(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("reading rpm header: %w", err)
	}
	return &Meta{
		Name:         stringTag(rpm, rpmutils.NAME),
		Version:      stringTag(rpm, rpmutils.VERSION),
		Architecture: stringTag(rpm, rpmutils.ARCH),
		Description:  stringTag(rpm, rpmutils.SUMMARY),
	}, nil
}

func stringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// InspectDeb reads the control stanza out of a deb package's
// control.tar member.
func InspectDeb(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := ar.NewReader(f)
	for {
		hdr, err := rd.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("no control.tar member in %s", path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading ar entry: %w", err)
		}
		if strings.HasPrefix(hdr.Name, "control.tar") {
			control, err := controlFromTar(rd, hdr.Name)
			if err != nil {
				return nil, err
			}
			return parseControl(control), nil
		}
	}
}

// controlFromTar decompresses a control.tar member by its suffix and
// returns the control file body.
func controlFromTar(r io.Reader, name string) ([]byte, error) {
	var tr *tar.Reader
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer gz.Close()
		tr = tar.NewReader(gz)
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		tr = tar.NewReader(xr)
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer zr.Close()
		tr = tar.NewReader(zr)
	default:
		tr = tar.NewReader(r)
	}

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Name == "./control" || hdr.Name == "control" {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("control file missing from %s", name)
}

// parseControl reads the stanza fields that identify the package.
// Continuation lines extend the preceding field.
func parseControl(data []byte) *Meta {
	meta := &Meta{}
	var key string
	var val strings.Builder

	flush := func() {
		switch key {
		case "Package":
			meta.Name = val.String()
		case "Version":
			meta.Version = val.String()
		case "Architecture":
			meta.Architecture = val.String()
		case "Description":
			meta.Description = val.String()
		}
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			val.WriteString("\n")
			val.WriteString(strings.TrimSpace(line))
			continue
		}
		flush()
		key = ""
		if k, v, ok := strings.Cut(line, ":"); ok {
			key = strings.TrimSpace(k)
			val.Reset()
			val.WriteString(strings.TrimSpace(v))
		}
	}
	flush()
	return meta
}
