package project

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"stratigraph/raster"
)

// LoadGrid reads an ASCII-grid elevation file: the usual
// ncols/nrows/xllcorner/yllcorner/cellsize header, an optional
// nodata_value line, then nrows data rows running north to south. Rows are
// flipped on read so the grid's storage runs south to north.
func LoadGrid(path string) (*raster.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: reading grid: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header := map[string]float64{}
	var values []float64
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		key := strings.ToLower(fields[0])
		if len(fields) == 2 && isHeaderKey(key) {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: header %s in %s", ErrBadGrid, key, path)
			}
			header[key] = v

			continue
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: value %q in %s", ErrBadGrid, field, path)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("project: reading grid %s: %w", path, err)
	}

	for _, key := range []string{"ncols", "nrows", "cellsize"} {
		if _, ok := header[key]; !ok {
			return nil, fmt.Errorf("%w: missing header %s in %s", ErrBadGrid, key, path)
		}
	}
	cols, rows := int(header["ncols"]), int(header["nrows"])
	if cols <= 0 || rows <= 0 || len(values) != cols*rows {
		return nil, fmt.Errorf("%w: %d values for %d×%d cells in %s",
			ErrBadGrid, len(values), cols, rows, path)
	}

	// File rows run north first; grid storage wants the southernmost row
	// first.
	data := make([]float64, 0, len(values))
	for r := rows - 1; r >= 0; r-- {
		data = append(data, values[r*cols:(r+1)*cols]...)
	}

	g, err := raster.NewGrid(header["xllcorner"], header["yllcorner"], header["cellsize"], cols, rows, data)
	if err != nil {
		return nil, fmt.Errorf("project: grid %s: %w", path, err)
	}

	return g, nil
}

func isHeaderKey(key string) bool {
	switch key {
	case "ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "nodata_value":
		return true
	}

	return false
}
