package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type taxonRow struct {
	Position int    `json:"position" yaml:"position"`
	Label    string `json:"label" yaml:"label"`
	Mask     string `json:"mask" yaml:"mask"`
}

type splitReport struct {
	Taxa              []string `json:"taxa" yaml:"taxa"`
	Split             string   `json:"split" yaml:"split"`
	Complement        string   `json:"complement" yaml:"complement"`
	Members           []string `json:"members" yaml:"members"`
	ComplementMembers []string `json:"complement_members" yaml:"complement_members"`
}

func (r splitReport) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "split       %s  %s\ncomplement  %s  %s\n",
		r.Split, strings.Join(r.Members, ","),
		r.Complement, strings.Join(r.ComplementMembers, ","))
	return err
}

func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
