package store

import (
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/pathwise/ent/schema"
)

// Table names for the persisted entities.
const (
	tableAssessments = "assessments"
	tableSkillGaps   = "skill_gaps"
	tableLLMEvents   = "llm_request_events"
)

// schemaTables lists every ent schema the store migrates, keyed by table name.
var schemaTables = []struct {
	name   string
	schema ent.Interface
}{
	{tableAssessments, entschema.Assessment{}},
	{tableSkillGaps, entschema.SkillGap{}},
	{tableLLMEvents, entschema.LLMRequestEvent{}},
}

// migrationTables builds the migration tables from the ent schema
// declarations. Mixin fields come first, followed by the schema's own.
func migrationTables() ([]*schema.Table, error) {
	tables := make([]*schema.Table, 0, len(schemaTables))
	for _, st := range schemaTables {
		t, err := buildTable(st.name, st.schema)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", st.name, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func buildTable(name string, s ent.Interface) (*schema.Table, error) {
	t := schema.NewTable(name).AddPrimary(&schema.Column{
		Name:      "id",
		Type:      field.TypeInt,
		Increment: true,
	})

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		t.AddColumn(columnFor(d))
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		key := d.StorageKey
		if key == "" {
			key = indexName(t.Name, d.Fields)
		}
		t.AddIndex(key, d.Unique, d.Fields)
	}
	return t, nil
}

func columnFor(d *field.Descriptor) *schema.Column {
	c := &schema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Size:     int64(d.Size),
		Unique:   d.Unique,
		Nullable: d.Optional,
		Comment:  d.Comment,
	}
	if d.StorageKey != "" {
		c.Name = d.StorageKey
	}
	// Function defaults (time.Now) are applied at insert time.
	if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
		c.Default = d.Default
	}
	return c
}

func indexName(table string, fields []string) string {
	return table + "_" + strings.Join(fields, "_")
}
