package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// default used when a grid file omits the NODATA_value header
const defaultNoData = -9999.0

// Load opens and parses one ASCII grid tile.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Parse reads an ESRI ASCII Grid: a short key/value header (ncols, nrows,
// xllcorner|xllcenter, yllcorner|yllcenter, cellsize, optional NODATA_value)
// followed by ncols*nrows whitespace-separated values, first row
// northernmost.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	g := &Grid{NoData: defaultNoData}
	var xCentered, yCentered bool
	var haveCols, haveRows, haveX, haveY, haveCell bool

	// header tokens alternate key/value; the first numeric token that is not
	// a known key starts the data block
	var firstData string
	for sc.Scan() {
		tok := sc.Text()
		key := strings.ToLower(tok)
		var err error
		switch key {
		case "ncols":
			g.Cols, err = scanInt(sc, key)
			haveCols = true
		case "nrows":
			g.Rows, err = scanInt(sc, key)
			haveRows = true
		case "xllcorner":
			g.XLL, err = scanFloat(sc, key)
			haveX = true
		case "xllcenter":
			g.XLL, err = scanFloat(sc, key)
			haveX, xCentered = true, true
		case "yllcorner":
			g.YLL, err = scanFloat(sc, key)
			haveY = true
		case "yllcenter":
			g.YLL, err = scanFloat(sc, key)
			haveY, yCentered = true, true
		case "cellsize":
			g.CellSize, err = scanFloat(sc, key)
			haveCell = true
		case "nodata_value":
			g.NoData, err = scanFloat(sc, key)
		default:
			firstData = tok
		}
		if err != nil {
			return nil, err
		}
		if firstData != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !haveCols || !haveRows || !haveX || !haveY || !haveCell {
		return nil, fmt.Errorf("incomplete header")
	}
	if g.Cols <= 0 || g.Rows <= 0 || g.CellSize <= 0 {
		return nil, fmt.Errorf("bad dimensions: %dx%d cellsize %g", g.Cols, g.Rows, g.CellSize)
	}
	if xCentered {
		g.XLL -= g.CellSize / 2
	}
	if yCentered {
		g.YLL -= g.CellSize / 2
	}

	want := g.Cols * g.Rows
	g.data = make([]float64, 0, want)
	if firstData != "" {
		v, err := strconv.ParseFloat(firstData, 64)
		if err != nil {
			return nil, fmt.Errorf("data value 0: %w", err)
		}
		g.data = append(g.data, v)
	}
	for len(g.data) < want && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("data value %d: %w", len(g.data), err)
		}
		g.data = append(g.data, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	if len(g.data) != want {
		return nil, fmt.Errorf("short data block: got %d values, want %d", len(g.data), want)
	}
	if math.IsNaN(g.NoData) {
		g.NoData = defaultNoData
	}
	return g, nil
}

func scanInt(sc *bufio.Scanner, key string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("missing value for %s", key)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", key, err)
	}
	return n, nil
}

func scanFloat(sc *bufio.Scanner, key string) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("missing value for %s", key)
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", key, err)
	}
	return v, nil
}
