package main

import (
	"bytes"
	"encoding/json"

	"github.com/fwojciec/woldoc"
	"gopkg.in/yaml.v3"
)

// encode serializes v in the given format. JSON is indented and keeps HTML
// characters unescaped.
func encode(format string, v any) ([]byte, error) {
	if format == woldoc.FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// emit writes one result to the output store or stdout and archives it as
// JSON when an archive is configured.
func emit(deps *Dependencies, kind, source string, v any) error {
	data, err := encode(deps.Format, v)
	if err != nil {
		return err
	}

	if deps.Archive != nil {
		content := data
		if deps.Format != woldoc.FormatJSON {
			if content, err = encode(woldoc.FormatJSON, v); err != nil {
				return err
			}
		}
		rec := &woldoc.Record{Kind: kind, SourceURL: source, Content: string(content)}
		if err := deps.Archive.CreateRecord(deps.Ctx, rec); err != nil {
			return err
		}
	}

	if deps.Store != nil {
		return deps.Store.Save(deps.Ctx, &woldoc.Output{
			SourceURL: source,
			Kind:      kind,
			Format:    deps.Format,
			Data:      data,
		})
	}

	_, err = deps.Stdout.Write(data)
	return err
}
