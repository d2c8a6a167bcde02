// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

// NarrowFloat rounds f to the nearest float32 and widens it back.
// Values beyond the float32 range become infinities.
func NarrowFloat(f float64) float64 {
	return float64(float32(f))
}

// Narrow returns a copy of v with every float leaf passed through
// [NarrowFloat]. The parser applies the same rounding per leaf when
// given [NarrowFloats]; Narrow exists for trees that did not come
// from a text parse.
func (v Value) Narrow() Value {
	switch v.kind {
	case KindFloat:
		return Float(NarrowFloat(v.float))
	case KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Narrow()
		}
		return Array(items...)
	case KindObject:
		members := make(map[string]Value, len(v.members))
		for key, member := range v.members {
			members[key] = member.Narrow()
		}
		return Object(members)
	default:
		return v
	}
}
