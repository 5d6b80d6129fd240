// Package parser turns campaign command arguments into mission requests.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/starshatterwars/missiongen/internal/geo"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// ErrNoArgs is returned when a command carries no arguments.
var ErrNoArgs = errors.New("no request arguments")

// ParseRequest parses the arguments of a generate command. The request is
// either one JSON object or a list of key=value pairs:
//
//	type=ESCORT_FREIGHT group=12 objective=13 region="Borova" start=6h30m
//
// Keys are type, start, group, secondary, objective, region, location and
// script. start takes a Go duration or a number of seconds.
func ParseRequest(args []string) (*core.MissionRequest, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}

	req := &core.MissionRequest{}
	if first := strings.TrimSpace(args[0]); len(args) == 1 && strings.HasPrefix(first, "{") {
		if err := json.Unmarshal([]byte(first), req); err != nil {
			return nil, fmt.Errorf("error unmarshalling request: %w", err)
		}
		return req, nil
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not key=value", arg)
		}
		if err := setField(req, strings.ToLower(strings.TrimSpace(key)), unquote(value)); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func setField(req *core.MissionRequest, key, value string) error {
	var err error
	switch key {
	case "type":
		err = req.Type.UnmarshalText([]byte(value))
	case "start":
		req.Start, err = parseStart(value)
	case "group", "primary":
		req.PrimaryGroup, err = parseID(value)
	case "secondary":
		req.SecondaryGroup, err = parseID(value)
	case "objective":
		req.ObjectiveGroup, err = parseID(value)
	case "region":
		req.Region = value
	case "script":
		req.Script = value
	case "location":
		var v core.Vec3
		if v, err = geo.Vec3FromString(value); err == nil {
			req.Location = &v
		}
	default:
		return fmt.Errorf("unknown request key %q", key)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	return nil
}

// unquote strips surrounding double quotes and collapses doubled quotes
// inside the value.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}

// parseID parses a group id that may be serialized as a float ("12.00").
func parseID(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}
	return int(f), nil
}

func parseStart(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a duration nor seconds", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
