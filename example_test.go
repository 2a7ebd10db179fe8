package dataclass_test

import (
	"fmt"
	"sort"

	dataclass "github.com/TerehinAV/DataclassHelpers"
)

func Example() {
	day := dataclass.MustRecordType("calendar_day",
		dataclass.Datetime("current_day", dataclass.Required()),
		dataclass.String("caption", dataclass.WithDefault("")),
	)
	calendar := dataclass.MustRecordType("calendar",
		dataclass.Datetime("current_date", dataclass.Required()),
		dataclass.ObjectList("days", day),
	)

	inst, err := dataclass.Import(calendar, map[string]any{
		"current_date": "2024-03-01 10:30:00",
		"days": []any{
			map[string]any{"current_day": "2024-03-01 00:00:00", "caption": "1"},
			map[string]any{"current_day": "2024-03-02 00:00:00"},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	flat := dataclass.Flatten(dataclass.Export(inst))
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%v\n", k, flat[k])
	}
	// Output:
	// current_date=2024-03-01 10:30:00
	// days.0.caption=1
	// days.0.current_day=2024-03-01 00:00:00
	// days.1.caption=
	// days.1.current_day=2024-03-02 00:00:00
}
