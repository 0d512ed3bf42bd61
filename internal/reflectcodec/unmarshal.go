// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Reflection-driven decoder: walks an arbitrary Go target with
// reflect and drives codec.Deserializer to populate it.

package reflectcodec

import (
	"encoding"
	"reflect"

	"go.blockwire.dev/blocks/internal/codec"
)

// Unmarshal decodes blocks into out, which must be a non-nil pointer.
// If WithChannel was given, the value is read from that channel
// instead and blocks is not used.
func Unmarshal(blocks []codec.Block, out any, opts ...codec.Option) error {
	ch := codec.NewOptions(opts...).Channel()
	if ch == nil {
		ch = codec.NewMemoryChannelFrom(blocks)
	}
	return UnmarshalFrom(ch, out, opts...)
}

// UnmarshalFrom decodes from ch into out, which must be a non-nil pointer.
func UnmarshalFrom(ch codec.BlockChannel, out any, opts ...codec.Option) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return codec.NewCustomError("reflectcodec: Unmarshal target must be a non-nil pointer, got %T", out)
	}
	o := codec.NewOptions(opts...)
	d := codec.NewDeserializer(ch)
	return unmarshalValue(d, rv.Elem(), newDepthGuard(o.MaxDepth()), o.StrictFields())
}

var (
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// unmarshalValue populates v, which must be addressable, by reading
// the production matching v's Go type from d.
func unmarshalValue(d *codec.Deserializer, v reflect.Value, g *depthGuard, strict bool) error {
	if err := g.enter(); err != nil {
		return err
	}
	defer g.leave()

	if v.CanAddr() {
		addr := v.Addr()
		if addr.Type().Implements(unmarshalerType) {
			return addr.Interface().(Unmarshaler).UnmarshalBlocks(d)
		}
		if addr.Type().Implements(textUnmarshalerType) {
			s, err := d.DeserializeStr()
			if err != nil {
				return err
			}
			return addr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		ok, _, err := d.DeserializeOption()
		if err != nil {
			return err
		}
		if !ok {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		v.Set(reflect.New(v.Type().Elem()))
		return unmarshalValue(d, v.Elem(), g, strict)
	case reflect.Bool:
		b, err := d.DeserializeBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Int8:
		n, err := d.DeserializeI8()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
		return nil
	case reflect.Int16:
		n, err := d.DeserializeI16()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
		return nil
	case reflect.Int32:
		n, err := d.DeserializeI32()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
		return nil
	case reflect.Int, reflect.Int64:
		n, err := d.DeserializeI64()
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint8:
		n, err := d.DeserializeU8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Uint16:
		n, err := d.DeserializeU16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Uint32:
		n, err := d.DeserializeU32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		n, err := d.DeserializeU64()
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	case reflect.Float32:
		f, err := d.DeserializeF32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
		return nil
	case reflect.Float64:
		f, err := d.DeserializeF64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	case reflect.String:
		s, err := d.DeserializeStr()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Slice, reflect.Array:
		return unmarshalSeqLike(d, v, g, strict)
	case reflect.Map:
		return unmarshalMap(d, v, g, strict)
	case reflect.Struct:
		return unmarshalStruct(d, v, g, strict)
	default:
		return codec.NewCustomError("reflectcodec: cannot unmarshal into kind %s", v.Kind())
	}
}

func unmarshalSeqLike(d *codec.Deserializer, v reflect.Value, g *depthGuard, strict bool) error {
	if v.Type().Elem().Kind() == reflect.Uint8 && v.Kind() == reflect.Slice {
		data, err := d.DeserializeBytes()
		if err != nil {
			return err
		}
		v.SetBytes(data)
		return nil
	}

	if v.Kind() == reflect.Array {
		access, err := d.DeserializeTuple(v.Len())
		if err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			more, err := access.Next()
			if err != nil {
				return err
			}
			if !more {
				return &codec.LengthMismatchError{Context: "tuple", Declared: v.Len(), Actual: i}
			}
			if err := unmarshalValue(d, v.Index(i), g, strict); err != nil {
				return err
			}
		}
		more, err := access.Next()
		if err != nil {
			return err
		}
		if more {
			return &codec.LengthMismatchError{Context: "tuple", Declared: v.Len(), Actual: v.Len() + 1}
		}
		return nil
	}

	access, err := d.DeserializeSeq()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(v.Type(), 0, 0)
	for {
		more, err := access.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := unmarshalValue(d, elem, g, strict); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
	}
	v.Set(out)
	return nil
}

func unmarshalMap(d *codec.Deserializer, v reflect.Value, g *depthGuard, strict bool) error {
	access, err := d.DeserializeMap()
	if err != nil {
		return err
	}
	out := reflect.MakeMap(v.Type())
	for {
		more, err := access.NextKey()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key := reflect.New(v.Type().Key()).Elem()
		if err := unmarshalValue(d, key, g, strict); err != nil {
			return err
		}
		val := reflect.New(v.Type().Elem()).Elem()
		if err := unmarshalValue(d, val, g, strict); err != nil {
			return err
		}
		out.SetMapIndex(key, val)
	}
	v.Set(out)
	return nil
}

func unmarshalStruct(d *codec.Deserializer, v reflect.Value, g *depthGuard, strict bool) error {
	info, err := codec.GetStructInfo(v.Type())
	if err != nil {
		return err
	}
	access, err := d.DeserializeStruct(v.Type().Name(), len(info.FieldsList))
	if err != nil {
		return err
	}
	for {
		name, ok, err := access.NextField()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fi, known := info.FieldsMap[name]
		if !known {
			if strict {
				return codec.NewCustomError("reflectcodec: unknown field %q for struct %s, known fields: %s",
					name, v.Type(), codec.DumpValue(info.FieldsList))
			}
			if err := d.SkipValue(); err != nil {
				return err
			}
			continue
		}
		if err := unmarshalValue(d, v.Field(fi.Num), g, strict); err != nil {
			return err
		}
	}
}
