package dupe

import (
	"strings"
	"testing"
)

func TestEstimateSizeGrowsWithContent(t *testing.T) {
	small := mustParseJSON(t, `[1]`)
	large := mustParseJSON(t, `[1, 2, 3, 4, 5, 6, 7, 8]`)
	if EstimateSize(large) <= EstimateSize(small) {
		t.Fatalf("larger array should estimate larger: %d vs %d", EstimateSize(large), EstimateSize(small))
	}
}

func TestEstimateSizeCountsAliasedStorageOnce(t *testing.T) {
	payload := NewArray([]Value{NewString(strings.Repeat("x", 1024))})
	shared := NewArray([]Value{payload, payload})
	duplicated := NewArray([]Value{
		MustDeepCopy(payload, RecursiveClone),
		MustDeepCopy(payload, RecursiveClone),
	})
	if EstimateSize(shared) >= EstimateSize(duplicated) {
		t.Fatalf("aliased storage should count once: shared %d vs duplicated %d",
			EstimateSize(shared), EstimateSize(duplicated))
	}
}

func TestEstimateSizeDedupsStringPayload(t *testing.T) {
	payload := strings.Repeat("y", 4096)
	repeated := NewArray([]Value{NewString(payload), NewString(payload)})
	single := NewArray([]Value{NewString(payload), NewInt(0)})
	diff := EstimateSize(repeated) - EstimateSize(single)
	if diff >= len(payload) {
		t.Fatalf("identical string payloads should count once; overhead was %d bytes", diff)
	}
}

func TestEstimateSizeTerminatesOnCycles(t *testing.T) {
	v := NewHash(map[string]Value{})
	if err := v.SetKey("self", v); err != nil {
		t.Fatalf("set key: %v", err)
	}
	if size := EstimateSize(v); size <= 0 {
		t.Fatalf("cyclic value should still estimate a positive size, got %d", size)
	}
}

func TestEstimateSizeCountsSharedCallableOnce(t *testing.T) {
	fn := &Func{Name: "hook"}
	shared := NewArray([]Value{NewFunc(fn), NewFunc(fn)})
	distinct := NewArray([]Value{NewFunc(&Func{Name: "hook"}), NewFunc(&Func{Name: "hook"})})
	if EstimateSize(shared) >= EstimateSize(distinct) {
		t.Fatalf("shared callable should count once: %d vs %d",
			EstimateSize(shared), EstimateSize(distinct))
	}
}
