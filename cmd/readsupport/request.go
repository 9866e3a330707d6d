package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Esysteme/readsupport"
)

// request is the YAML form of a read request.
//
//	columns: [a, b]
//	types: [int, "struct<x:int,y:string>"]
//	read: [1]
type request struct {
	Columns     []string          `yaml:"columns"`
	Types       []string          `yaml:"types"`
	Partition   *partition        `yaml:"partition"`
	IndexAccess bool              `yaml:"index_access"`
	Read        []int             `yaml:"read"`
	Properties  map[string]string `yaml:"properties"`
}

type partition struct {
	Columns []string `yaml:"columns"`
	Types   []string `yaml:"types"`
	Use     bool     `yaml:"use"`
}

func loadRequest(path string) (*request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := new(request)
	if err := yaml.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// properties returns the configuration of the read. Fields of r take
// precedence over the raw properties. Without columns, the column keys are
// left unset so the file schema is read as is; without read ordinals, every
// column is read.
func (r *request) properties() readsupport.Properties {
	p := make(readsupport.Properties, len(r.Properties)+8)
	for k, v := range r.Properties {
		p[k] = v
	}

	if r.Columns != nil {
		p[readsupport.ColumnsKey] = strings.Join(r.Columns, ",")
		p[readsupport.ColumnsTypesKey] = strings.Join(r.Types, ",")
	}

	if r.Partition != nil {
		p[readsupport.PartitionColumnsKey] = strings.Join(r.Partition.Columns, ",")
		p[readsupport.PartitionColumnsTypesKey] = strings.Join(r.Partition.Types, ",")
		p[readsupport.UsePartitionColumnsKey] = strconv.FormatBool(r.Partition.Use)
	}

	if r.IndexAccess {
		p[readsupport.IndexAccessKey] = "true"
	}

	if r.Read != nil {
		ids := make([]string, len(r.Read))
		for i, id := range r.Read {
			ids[i] = strconv.Itoa(id)
		}
		p[readsupport.ReadColumnIDsKey] = strings.Join(ids, ",")
		p[readsupport.ReadAllColumnsKey] = "false"
	}

	return p
}
