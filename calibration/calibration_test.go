package calibration

import (
	"strings"
	"testing"

	"github.com/wjcskqygj2015/hyrise/types"
)

func baseConfig() CalibrationConfig {
	return CalibrationConfig{
		DataTypes:     []types.DataType{types.Int, types.String},
		Encodings:     []types.EncodingType{types.Unencoded, types.Dictionary},
		Selectivities: []float64{0.1, 0.5},
	}
}

func TestGeneratePredicatePermutationsIsDeterministic(t *testing.T) {
	tables := []TableRowCount{{TableName: "lineitem", RowCount: 1000}}
	cfg := baseConfig()

	first := GeneratePredicatePermutations(tables, cfg)
	second := GeneratePredicatePermutations(tables, cfg)

	if len(first) != len(second) {
		t.Fatalf("expected deterministic permutation count, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical permutation at index %d, got %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGeneratePredicatePermutationsCountsSingleColumn(t *testing.T) {
	tables := []TableRowCount{{TableName: "lineitem", RowCount: 1000}, {TableName: "orders", RowCount: 500}}
	cfg := baseConfig()

	got := GeneratePredicatePermutations(tables, cfg)
	want := len(tables) * len(cfg.DataTypes) * len(cfg.Encodings) * len(cfg.Selectivities)
	if len(got) != want {
		t.Fatalf("expected %d single-column permutations, got %d", want, len(got))
	}
}

func TestGeneratePredicatePermutationsSortedByLess(t *testing.T) {
	tables := []TableRowCount{{TableName: "lineitem", RowCount: 1000}}
	got := GeneratePredicatePermutations(tables, baseConfig())
	for i := 1; i < len(got); i++ {
		if got[i].Less(got[i-1]) {
			t.Fatalf("expected permutations sorted by Less, violated at index %d", i)
		}
	}
}

func TestBetweenValueValueAppliesToAnyType(t *testing.T) {
	cfg := PredicateConfiguration{TableName: "t", DataType: types.Int, FirstEncoding: types.Unencoded, Selectivity: 0.3, RowCount: 100}
	gen, ok := GeneratePredicateNode(BetweenValueValue, cfg, false)
	if !ok || gen == nil {
		t.Fatalf("expected BetweenValueValue to apply to Int")
	}
}

func TestLikeRejectsNonStringTypes(t *testing.T) {
	cfg := PredicateConfiguration{TableName: "t", DataType: types.Int, FirstEncoding: types.Unencoded, Selectivity: 0.3, RowCount: 100}
	_, ok := GeneratePredicateNode(Like, cfg, false)
	if ok {
		t.Fatalf("expected Like to decline a non-string configuration")
	}
}

func TestLikeAppliesToStringTypes(t *testing.T) {
	cfg := PredicateConfiguration{TableName: "t", DataType: types.String, FirstEncoding: types.FixedStringDictionary, Selectivity: 0.3, RowCount: 100}
	gen, ok := GeneratePredicateNode(Like, cfg, false)
	if !ok || gen == nil {
		t.Fatalf("expected Like to apply to a string configuration")
	}
}

func TestLikeValueCarriesTrailingWildcardWhenRequested(t *testing.T) {
	withWildcard := likeValue(0.3, true)
	if s, ok := withWildcard.Raw.(string); !ok || !strings.HasSuffix(s, "%") {
		t.Fatalf("expected a trailing '%%' wildcard, got %v", withWildcard.Raw)
	}

	without := likeValue(0.3, false)
	if s, ok := without.Raw.(string); !ok || strings.Contains(s, "%") {
		t.Fatalf("expected no wildcard when trailingLike is false, got %v", without.Raw)
	}
}

func TestColumnColumnRequiresSecondEncodingSlot(t *testing.T) {
	cfg := PredicateConfiguration{TableName: "t", DataType: types.Int, FirstEncoding: types.Unencoded, Selectivity: 0.3, RowCount: 100}
	_, ok := GeneratePredicateNode(ColumnColumn, cfg, false)
	if ok {
		t.Fatalf("expected ColumnColumn to decline a configuration with no second column")
	}

	secondEnc := types.Dictionary
	cfg.SecondEncoding = &secondEnc
	gen, ok := GeneratePredicateNode(ColumnColumn, cfg, false)
	if !ok || gen == nil {
		t.Fatalf("expected ColumnColumn to apply once a second encoding slot is present")
	}
}

func TestBetweenColumnColumnRequiresBothExtraColumns(t *testing.T) {
	secondEnc := types.Dictionary
	cfg := PredicateConfiguration{
		TableName: "t", DataType: types.Int, FirstEncoding: types.Unencoded,
		SecondEncoding: &secondEnc, Selectivity: 0.3, RowCount: 100,
	}
	if _, ok := GeneratePredicateNode(BetweenColumnColumn, cfg, false); ok {
		t.Fatalf("expected BetweenColumnColumn to decline without a third column")
	}

	thirdEnc := types.RunLength
	cfg.ThirdEncoding = &thirdEnc
	gen, ok := GeneratePredicateNode(BetweenColumnColumn, cfg, false)
	if !ok || gen == nil {
		t.Fatalf("expected BetweenColumnColumn to apply once both extra columns are present")
	}
}

func TestGeneratePredicateNodeCarriesIndexScanHint(t *testing.T) {
	cfg := PredicateConfiguration{TableName: "t", DataType: types.Int, FirstEncoding: types.Unencoded, Selectivity: 0.3, RowCount: 100}
	gen, ok := GeneratePredicateNode(ColumnValue, cfg, true)
	if !ok || !gen.IndexScanHint {
		t.Fatalf("expected the index-scan hint to be carried through")
	}
}
