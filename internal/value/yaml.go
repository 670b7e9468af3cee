package value

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Local YAML tags for kinds that plain YAML cannot express.
const (
	TagLine     = "!line"
	TagPath     = "!path"
	TagFilesize = "!filesize"
	TagDuration = "!duration"
	TagDate     = "!date"
	TagUuid     = "!uuid"
)

// FromYAML parses a YAML document into a Value.
// Mappings become Rows (source order kept), sequences become Tables and
// scalars are resolved by their YAML tag.
func FromYAML(content []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	return FromNode(&doc)
}

// FromNode converts an already parsed YAML node.
func FromNode(n *yaml.Node) (Value, error) {
	return fromNode(n, map[*yaml.Node]bool{})
}

// fromNode tracks the alias targets being expanded so that an anchor
// referenced from inside itself is reported instead of recursing forever.
func fromNode(n *yaml.Node, expanding map[*yaml.Node]bool) (Value, error) {
	switch n.Kind {
	case 0:
		return Nothing{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nothing{}, nil
		}
		return fromNode(n.Content[0], expanding)
	case yaml.AliasNode:
		if n.Alias == nil || expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		expanding[n.Alias] = true
		defer delete(expanding, n.Alias)
		return fromNode(n.Alias, expanding)
	case yaml.SequenceNode:
		table := make(Table, len(n.Content))
		for i, item := range n.Content {
			v, err := fromNode(item, expanding)
			if err != nil {
				return nil, err
			}
			table[i] = v
		}
		return table, nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: row keys must be scalars", key.Line)
			}
			v, err := fromNode(val, expanding)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: key.Value, Value: v})
		}
		return NewRow(entries...), nil
	case yaml.ScalarNode:
		v, err := fromScalar(n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return Nothing{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Boolean(b), nil
	case "!!int":
		return ParseInt(n.Value)
	case "!!float":
		if d, err := ParseDecimal(n.Value); err == nil {
			return d, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return DecimalFromFloat(f)
	case "!!str":
		return String(n.Value), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid binary literal: %w", err)
		}
		return Binary(b), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, err
		}
		return Date{t: t}, nil
	case TagLine:
		return Line(n.Value), nil
	case TagPath:
		return Path(n.Value), nil
	case TagFilesize:
		if size, err := strconv.ParseUint(n.Value, 10, 64); err == nil {
			return Filesize(size), nil
		}
		size, err := humanize.ParseBytes(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid filesize %q: %w", n.Value, err)
		}
		return Filesize(size), nil
	case TagDuration:
		d, err := time.ParseDuration(n.Value)
		if err != nil {
			return nil, err
		}
		return Duration(d), nil
	case TagDate:
		t, err := time.Parse(time.RFC3339, n.Value)
		if err != nil {
			return nil, err
		}
		return Date{t: t}, nil
	case TagUuid:
		u, err := uuid.Parse(n.Value)
		if err != nil {
			return nil, err
		}
		return Uuid(u), nil
	default:
		return nil, fmt.Errorf("unsupported tag %s", tag)
	}
}

// FromNative converts plain Go values, such as those produced by
// yaml.Unmarshal into an interface{} or by database/sql scans.
func FromNative(data any) (Value, error) {
	switch v := data.(type) {
	case nil:
		return Nothing{}, nil
	case Value:
		return v, nil
	case bool:
		return Boolean(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint64:
		return Int{v: new(big.Int).SetUint64(v)}, nil
	case *big.Int:
		return IntFromBig(v), nil
	case float32:
		return DecimalFromFloat(float64(v))
	case float64:
		return DecimalFromFloat(v)
	case string:
		return String(v), nil
	case []byte:
		return Binary(append([]byte(nil), v...)), nil
	case time.Time:
		return Date{t: v}, nil
	case time.Duration:
		return Duration(v), nil
	case uuid.UUID:
		return Uuid(v), nil
	case []any:
		table := make(Table, len(v))
		for i, item := range v {
			obj, err := FromNative(item)
			if err != nil {
				return nil, err
			}
			table[i] = obj
		}
		return table, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			obj, err := FromNative(v[k])
			if err != nil {
				return nil, err
			}
			entries[i] = Entry{Key: k, Value: obj}
		}
		return NewRow(entries...), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a value", data)
	}
}
