package store

import (
	"os"
	"path/filepath"
	"testing"

	"brainrot-value-bot/internal/types"
)

func TestOpenCreatesDocuments(t *testing.T) {
	dir := t.TempDir()

	f, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, name := range []string{"brainrots.json", "overrides.json", "channels.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	data, err := f.Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty data, got %d entries", len(data))
	}

	ch, err := f.Channels()
	if err != nil {
		t.Fatalf("Channels failed: %v", err)
	}
	if ch.AlertChannel != nil || ch.TradeLogChannel != nil {
		t.Error("expected nil channels on first run")
	}
}

func TestOpenRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "overrides.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(dir); err == nil {
		t.Fatal("expected Open to fail on corrupt overrides.json")
	}
}

func TestUpdateDataRoundTrip(t *testing.T) {
	f, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	err = f.UpdateData(func(m map[string]types.ValuationRecord) error {
		m["garama"] = types.ValuationRecord{Value: 2100, Demand: types.DemandHigh, Icon: "🧠", Source: types.SourceAuto}
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateData failed: %v", err)
	}

	data, err := f.Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}
	rec, ok := data["garama"]
	if !ok {
		t.Fatal("expected garama to be persisted")
	}
	if rec.Value != 2100 || rec.Demand != types.DemandHigh {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestUpdateAbortsWithoutWriting(t *testing.T) {
	f, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	wantErr := os.ErrInvalid
	err = f.UpdateData(func(m map[string]types.ValuationRecord) error {
		m["ghost"] = types.ValuationRecord{Value: 1}
		return wantErr
	})
	if err == nil {
		t.Fatal("expected error from UpdateData")
	}

	data, _ := f.Data()
	if _, ok := data["ghost"]; ok {
		t.Error("aborted update must not persist")
	}
}

func TestUpdateOverridesSparseFields(t *testing.T) {
	f, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	v := int64(9000)
	err = f.UpdateOverrides(func(m map[string]types.OverrideRecord) error {
		o := m["tungtung"]
		o.Value = &v
		m["tungtung"] = o
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateOverrides failed: %v", err)
	}

	overrides, err := f.Overrides()
	if err != nil {
		t.Fatalf("Overrides failed: %v", err)
	}
	o := overrides["tungtung"]
	if o.Value == nil || *o.Value != 9000 {
		t.Errorf("expected value override 9000, got %+v", o)
	}
	if o.Demand != nil || o.Icon != nil {
		t.Error("unset override fields must stay nil after round trip")
	}
	if !o.HasValueOrDemand() {
		t.Error("override with value should report HasValueOrDemand")
	}
}

func TestUpdateChannels(t *testing.T) {
	f, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	id := "123456"
	err = f.UpdateChannels(func(c *types.ChannelConfig) error {
		c.AlertChannel = &id
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateChannels failed: %v", err)
	}

	ch, err := f.Channels()
	if err != nil {
		t.Fatalf("Channels failed: %v", err)
	}
	if ch.AlertChannel == nil || *ch.AlertChannel != "123456" {
		t.Errorf("expected alert channel 123456, got %+v", ch)
	}
	if ch.TradeLogChannel != nil {
		t.Error("trade log channel should remain unset")
	}
}
