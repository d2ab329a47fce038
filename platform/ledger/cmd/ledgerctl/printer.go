/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerctl

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	"gopkg.in/yaml.v2"
)

// printer writes one record per line in json, or one document per record in yaml
type printer struct {
	w    io.Writer
	yaml bool
	json *json.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "json", "":
		return &printer{w: w, json: json.NewEncoder(w)}, nil
	case "yaml":
		return &printer{w: w, yaml: true}, nil
	default:
		return nil, errors.Errorf("unknown output format [%s]", format)
	}
}

func (p *printer) print(v any) error {
	if !p.yaml {
		return p.json.Encode(v)
	}
	raw, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed encoding yaml")
	}
	if _, err := io.WriteString(p.w, "---\n"); err != nil {
		return err
	}
	_, err = p.w.Write(raw)
	return err
}

type eventView struct {
	Created   *data.CreatedEvent   `json:"created,omitempty" yaml:"created,omitempty"`
	Archived  *data.ArchivedEvent  `json:"archived,omitempty" yaml:"archived,omitempty"`
	Exercised *data.ExercisedEvent `json:"exercised,omitempty" yaml:"exercised,omitempty"`
}

type transactionView struct {
	UpdateID       string      `json:"updateId" yaml:"updateId"`
	CommandID      string      `json:"commandId,omitempty" yaml:"commandId,omitempty"`
	WorkflowID     string      `json:"workflowId,omitempty" yaml:"workflowId,omitempty"`
	Offset         int64       `json:"offset" yaml:"offset"`
	SynchronizerID string      `json:"synchronizerId,omitempty" yaml:"synchronizerId,omitempty"`
	EffectiveAt    string      `json:"effectiveAt,omitempty" yaml:"effectiveAt,omitempty"`
	RecordTime     string      `json:"recordTime,omitempty" yaml:"recordTime,omitempty"`
	Events         []eventView `json:"events" yaml:"events"`
}

func viewOf(tx *data.Transaction) transactionView {
	v := transactionView{
		UpdateID:       tx.UpdateID,
		CommandID:      tx.CommandID,
		WorkflowID:     tx.WorkflowID,
		Offset:         tx.Offset,
		SynchronizerID: tx.SynchronizerID,
		EffectiveAt:    formatTime(tx.EffectiveAt),
		RecordTime:     formatTime(tx.RecordTime),
		Events:         make([]eventView, 0, len(tx.Events)),
	}
	for _, e := range tx.Events {
		switch e := e.(type) {
		case *data.CreatedEvent:
			v.Events = append(v.Events, eventView{Created: e})
		case *data.ArchivedEvent:
			v.Events = append(v.Events, eventView{Archived: e})
		case *data.ExercisedEvent:
			v.Events = append(v.Events, eventView{Exercised: e})
		}
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
