package params

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

func TestClassifyLeaves(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		node apidoc.Param
		want Derived
	}{
		{
			name: "plain string",
			mode: ModeResource,
			node: apidoc.Param{Name: "name", ExpectedType: "string", Required: true, Description: " A name "},
			want: Derived{Name: "name", Kind: KindStr, DocKind: KindStr, Required: true, Description: "A name"},
		},
		{
			name: "id reference",
			mode: ModeResource,
			node: apidoc.Param{Name: "domain_id", ExpectedType: "numeric", Description: "Domain"},
			want: Derived{Name: "domain", Kind: KindEntity, DocKind: KindEntity, Description: "Domain"},
		},
		{
			name: "id list reference",
			mode: ModeResource,
			node: apidoc.Param{Name: "subnet_ids", ExpectedType: "array", Description: "Subnets"},
			want: Derived{Name: "subnet", Kind: KindEntityList, DocKind: KindEntityList, Description: "Subnets"},
		},
		{
			name: "info id documents str",
			mode: ModeInfo,
			node: apidoc.Param{Name: "host_id", ExpectedType: "numeric"},
			want: Derived{Name: "host", Kind: KindEntity, DocKind: KindStr},
		},
		{
			name: "info id list documents list",
			mode: ModeInfo,
			node: apidoc.Param{Name: "puppetclass_ids", ExpectedType: "array"},
			want: Derived{Name: "puppetclass", Kind: KindEntityList, DocKind: KindList},
		},
		{
			name: "info primitive",
			mode: ModeInfo,
			node: apidoc.Param{Name: "thin", ExpectedType: "boolean"},
			want: Derived{Name: "thin", Kind: KindBool, DocKind: KindBool},
		},
		{
			name: "unknown tag",
			mode: ModeResource,
			node: apidoc.Param{Name: "ip", ExpectedType: "ipaddr"},
			want: Derived{Name: "ip", Kind: KindStr, DocKind: KindStr},
		},
		{
			name: "suffix is case sensitive",
			mode: ModeResource,
			node: apidoc.Param{Name: "owner_ID", ExpectedType: "string"},
			want: Derived{Name: "owner_ID", Kind: KindStr, DocKind: KindStr},
		},
		{
			name: "ids without underscore",
			mode: ModeResource,
			node: apidoc.Param{Name: "uuids", ExpectedType: "array"},
			want: Derived{Name: "uuids", Kind: KindList, DocKind: KindList},
		},
		{
			name: "bare suffix",
			mode: ModeResource,
			node: apidoc.Param{Name: "_id", ExpectedType: "numeric"},
			want: Derived{Name: "", Kind: KindEntity, DocKind: KindEntity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.node, Rules{Mode: tt.mode})
			if got.Outcome != OutcomeLeaf {
				t.Fatalf("expected leaf outcome, got %s", got.Outcome)
			}
			if diff := cmp.Diff(tt.want, got.Param); diff != "" {
				t.Fatalf("derived mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyGroupIgnoresOwnFields(t *testing.T) {
	group := apidoc.Param{
		Name:         "host",
		ExpectedType: "hash",
		Required:     true,
		Params:       []apidoc.Param{{Name: "name", ExpectedType: "string"}},
	}
	got := Classify(group, Rules{Mode: ModeResource, Skip: NewSkipSet("host")})
	if got.Outcome != OutcomeGroup {
		t.Fatalf("expected group outcome, got %s", got.Outcome)
	}
	if diff := cmp.Diff(Derived{}, got.Param); diff != "" {
		t.Fatalf("group must not carry a derived param:\n%s", diff)
	}
}

func TestClassifySkipsByOriginalName(t *testing.T) {
	rules := NewRules(ModeResource)
	for _, name := range []string{"location_id", "organization_id", "location_ids", "organization_ids"} {
		if got := Classify(apidoc.Param{Name: name, ExpectedType: "numeric"}, rules); got.Outcome != OutcomeSkip {
			t.Fatalf("expected %s to be skipped, got %s", name, got.Outcome)
		}
	}

	// "location" is the stripped name, not the original one.
	rules.Skip = NewSkipSet("location")
	if got := Classify(apidoc.Param{Name: "location_id"}, rules); got.Outcome != OutcomeLeaf {
		t.Fatalf("skip set must match original names, got %s", got.Outcome)
	}
}

func TestNewRulesSelectsSkipSetByMode(t *testing.T) {
	info := NewRules(ModeInfo)
	want := []string{"location_id", "order", "organization_id", "page", "per_page", "search"}
	if diff := cmp.Diff(want, info.Skip.Names()); diff != "" {
		t.Fatalf("info skip set mismatch (-want +got):\n%s", diff)
	}

	resource := NewRules(ModeResource)
	want = []string{"location_id", "location_ids", "organization_id", "organization_ids"}
	if diff := cmp.Diff(want, resource.Skip.Names()); diff != "" {
		t.Fatalf("resource skip set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode("info"); err != nil || mode != ModeInfo {
		t.Fatalf("ParseMode(info) = %q, %v", mode, err)
	}
	if _, err := ParseMode("module"); err == nil {
		t.Fatalf("expected unknown mode error")
	}
}
