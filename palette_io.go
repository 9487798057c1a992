package colorwidgets

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// gplHeader is the magic first line of a GIMP palette file.
const gplHeader = "GIMP Palette"

// LoadPaletteFile reads a palette from disk, picking the format from the
// file extension: .yaml/.yml for the YAML document format, GIMP .gpl
// otherwise.
func LoadPaletteFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadPaletteYAML(f)
	default:
		return ReadPaletteGPL(f)
	}
}

// SavePaletteFile writes a palette to disk, picking the format from the file
// extension the same way [LoadPaletteFile] does.
func SavePaletteFile(path string, p *Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return WritePaletteYAML(f, p)
	default:
		return WritePaletteGPL(f, p)
	}
}

// ReadPaletteGPL parses the GIMP .gpl text format. Comment lines, blank
// lines, and malformed color rows are skipped; a Columns header feeds the
// palette's layout hint.
func ReadPaletteGPL(r io.Reader) (*Palette, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("gpl: empty input")
	}
	if strings.TrimSpace(sc.Text()) != gplHeader {
		return nil, fmt.Errorf("gpl: missing %q header", gplHeader)
	}

	p := NewPalette()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// skip

		case strings.HasPrefix(line, "Name:"):
			p.name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))

		case strings.HasPrefix(line, "Columns:"):
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Columns:"))); err == nil && n > 0 {
				p.columns = n
			}

		default:
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			r8, err1 := strconv.Atoi(fields[0])
			g8, err2 := strconv.Atoi(fields[1])
			b8, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			p.entries = append(p.entries, Entry{
				Color: color.RGBA{
					R: uint8(clampInt(r8, 0, 255)),
					G: uint8(clampInt(g8, 0, 255)),
					B: uint8(clampInt(b8, 0, 255)),
					A: 255,
				},
				Name: strings.Join(fields[3:], " "),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// WritePaletteGPL serializes a palette in the GIMP .gpl text format. The
// alpha channel is not representable in .gpl and is dropped.
func WritePaletteGPL(w io.Writer, p *Palette) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, gplHeader)
	if p.name != "" {
		fmt.Fprintf(bw, "Name: %s\n", p.name)
	}
	if p.columns > 0 {
		fmt.Fprintf(bw, "Columns: %d\n", p.columns)
	}
	fmt.Fprintln(bw, "#")
	for _, e := range p.entries {
		if _, err := fmt.Fprintf(bw, "%d %d %d\t%s\n", e.Color.R, e.Color.G, e.Color.B, e.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type yamlPalette struct {
	Name    string      `yaml:"name,omitempty"`
	Columns int         `yaml:"columns,omitempty"`
	Colors  []yamlEntry `yaml:"colors"`
}

type yamlEntry struct {
	Color string `yaml:"color"`
	Name  string `yaml:"name,omitempty"`
}

// ReadPaletteYAML parses the YAML palette document format. Unlike .gpl it
// round-trips alpha, via the "#aarrggbb" color form.
func ReadPaletteYAML(r io.Reader) (*Palette, error) {
	var doc yamlPalette
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	p := NewPalette()
	p.name = doc.Name
	if doc.Columns > 0 {
		p.columns = doc.Columns
	}
	for i, e := range doc.Colors {
		c, ok := ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("palette: entry %d: bad color %q", i, e.Color)
		}
		p.entries = append(p.entries, Entry{Color: c, Name: e.Name})
	}
	return p, nil
}

// WritePaletteYAML serializes a palette as a YAML document.
func WritePaletteYAML(w io.Writer, p *Palette) error {
	doc := yamlPalette{
		Name:    p.name,
		Columns: p.columns,
		Colors:  make([]yamlEntry, 0, len(p.entries)),
	}
	for _, e := range p.entries {
		doc.Colors = append(doc.Colors, yamlEntry{Color: HexColor(e.Color), Name: e.Name})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
