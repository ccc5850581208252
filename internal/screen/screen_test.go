package screen

import "testing"

func TestRegistryListSorted(t *testing.T) {
	var log []string
	register(t, &stubScreen{id: "zz-list", log: &log})
	register(t, &stubScreen{id: "aa-list", log: &log})

	var ids []ID
	for _, info := range List() {
		if info.ID == "zz-list" || info.ID == "aa-list" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+string(info.ID) {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "aa-list" {
		t.Errorf("List() order = %v", ids)
	}

	all := All()
	if len(all) != len(List()) {
		t.Errorf("All() = %d screens, List() = %d", len(all), len(List()))
	}
	if !Exists("aa-list") || Exists("nope") {
		t.Error("Exists mismatch")
	}
	if s, err := Lookup("zz-list"); err != nil || s.ID() != "zz-list" {
		t.Errorf("Lookup = %v, %v", s, err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	var log []string
	register(t, &stubScreen{id: "dup", log: &log})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(&stubScreen{id: "dup", log: &log})
}
