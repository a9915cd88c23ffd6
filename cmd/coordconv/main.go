// Command coordconv converts coordinate pairs between WGS84 and WCONGNAMUL
// from the command line. Input order is lon/lat for WGS84 and
// easting/northing for WCONGNAMUL.
//
// Usage:
//
//	go run ./cmd/coordconv -from WGS84 -to WCONGNAMUL 127.0276 37.4979
//	go run ./cmd/coordconv -from WCONGNAMUL -to WGS84 506190 1112080
//
// With no positional arguments, pairs are read from stdin, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hanbit-labs/korea-sensor-etl/internal/geo"
)

func main() {
	from := flag.String("from", string(geo.SystemWGS84), "source coordinate system (WGS84 or WCONGNAMUL)")
	to := flag.String("to", string(geo.SystemWCONGNAMUL), "target coordinate system (WGS84 or WCONGNAMUL)")
	flag.Parse()

	fromSys := geo.System(strings.ToUpper(*from))
	toSys := geo.System(strings.ToUpper(*to))
	if fromSys != geo.SystemWGS84 && fromSys != geo.SystemWCONGNAMUL {
		fmt.Fprintf(os.Stderr, "unknown source system %q\n", *from)
		os.Exit(2)
	}

	args := flag.Args()
	switch {
	case len(args) == 2:
		if err := convertPair(fromSys, toSys, args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case len(args) == 0:
		if err := convertStdin(fromSys, toSys); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "expected exactly two coordinates or none (stdin mode)")
		os.Exit(2)
	}
}

func convertStdin(from, to geo.System) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return fmt.Errorf("malformed line %q: want two coordinates", line)
		}
		if err := convertPair(from, to, parts[0], parts[1]); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func convertPair(from, to geo.System, xs, ys string) error {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return fmt.Errorf("parse %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return fmt.Errorf("parse %q: %w", ys, err)
	}

	var coord geo.Coordinate
	if from == geo.SystemWGS84 {
		coord = geo.FromGeodetic(x, y)
	} else {
		coord = geo.FromPlanar(x, y)
	}

	out, err := geo.Convert(coord, to)
	if err != nil {
		return err
	}

	if out.System == geo.SystemWGS84 {
		fmt.Printf("%.7f %.7f\n", out.Geo.Lon, out.Geo.Lat)
	} else {
		fmt.Printf("%.1f %.1f\n", out.Plane.X, out.Plane.Y)
	}
	return nil
}
