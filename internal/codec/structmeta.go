// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Struct metadata extraction for the reflection-driven encoder.
// Parses `block:"name,omitempty"` struct tags and caches the result
// per type.

package codec

import (
	"reflect"
	"strings"
	"sync"
)

// FieldInfo holds metadata about a single struct field relevant to encoding.
type FieldInfo struct {
	Key       string
	Num       int
	OmitEmpty bool
}

// StructInfo holds cached metadata about a struct type's encodable fields.
type StructInfo struct {
	FieldsMap  map[string]FieldInfo
	FieldsList []FieldInfo
}

var (
	structMetaMu sync.RWMutex
	structMeta   = make(map[reflect.Type]*StructInfo)
)

// GetStructInfo returns cached metadata about st's exported,
// tag-eligible fields, computing and caching it on first use.
func GetStructInfo(st reflect.Type) (*StructInfo, error) {
	structMetaMu.RLock()
	info, found := structMeta[st]
	structMetaMu.RUnlock()
	if found {
		return info, nil
	}

	n := st.NumField()
	fieldsMap := make(map[string]FieldInfo)
	fieldsList := make([]FieldInfo, 0, n)
	for i := 0; i != n; i++ {
		field := st.Field(i)
		if field.PkgPath != "" && !field.Anonymous {
			continue
		}

		fi := FieldInfo{Num: i}
		tag := field.Tag.Get("block")
		if tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		for _, flag := range parts[1:] {
			if flag == "omitempty" {
				fi.OmitEmpty = true
			}
		}

		if name != "" {
			fi.Key = name
		} else {
			fi.Key = strings.ToLower(field.Name)
		}

		if _, dup := fieldsMap[fi.Key]; dup {
			return nil, NewCustomError("duplicated field key %q in struct %s", fi.Key, st)
		}

		fieldsMap[fi.Key] = fi
		fieldsList = append(fieldsList, fi)
	}

	info = &StructInfo{FieldsMap: fieldsMap, FieldsList: fieldsList}

	structMetaMu.Lock()
	structMeta[st] = info
	structMetaMu.Unlock()
	return info, nil
}
