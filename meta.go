package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var registryMu sync.RWMutex
var registry = map[reflect.Type]*Meta{}

// Meta is the booted metadata of one enum type: the constant set in
// declaration order, lookup tables derived from it, the default value, the
// refinement lineage, and the label table.
//
// The constant tables are populated once during discovery and never change
// afterward, so they are read without locking. Only the label table and the
// boot flag mutate after discovery; mu guards those.
type Meta struct {
	typ  reflect.Type
	name string

	members []Member
	byName  map[string]int
	byValue map[any]int
	byConst map[string]int // constant-form name -> member index

	defaultValue any
	hasDefault   bool
	fallback     bool

	// lineage is the refinement chain: typ first, then each embedded enum
	// type outward-in. path is the field index path from typ down to its
	// embedded Instance.
	lineage []reflect.Type
	path    []int

	mu     sync.RWMutex // protects labels and booted
	labels map[any]string
	booted bool
}

// metaFor returns the Meta for t, booting the type on first use. Discovery
// runs outside the registry lock so a declaration callback may construct
// instances of other enum types; when two goroutines race to boot the same
// type, one discovery result wins and the other is discarded.
func metaFor(t reflect.Type) *Meta {
	registryMu.RLock()
	m := registry[t]
	registryMu.RUnlock()

	if m == nil {
		fresh := discover(t)
		registryMu.Lock()
		if existing := registry[t]; existing != nil {
			m = existing
		} else {
			registry[t] = fresh
			m = fresh
		}
		registryMu.Unlock()
	}

	m.ensureInit()
	return m
}

// ensureInit runs the type's EnumInit hook at most once. The boot flag is
// claimed before the hook is invoked, and the Meta is already registered at
// that point, so a hook that calls back into this package observes the
// cached entry instead of re-triggering discovery.
func (m *Meta) ensureInit() {
	m.mu.RLock()
	booted := m.booted
	m.mu.RUnlock()
	if booted {
		return
	}

	m.mu.Lock()
	if m.booted {
		m.mu.Unlock()
		return
	}
	m.booted = true
	m.mu.Unlock()

	if m.typ.Implements(initializerType) {
		reflect.Zero(m.typ).Interface().(Initializer).EnumInit(m)
	}
}

// Reset drops the cached metadata for T. The next use of T boots it from
// scratch, re-reading the declaration and re-running any EnumInit hook.
// Instances constructed before the reset stay comparable with instances
// constructed after it.
func Reset[T Declarer]() {
	t := typeOf[T]()
	registryMu.Lock()
	delete(registry, t)
	registryMu.Unlock()
}

// MetaOf returns the booted metadata for T.
func MetaOf[T Declarer]() *Meta {
	return metaFor(typeOf[T]())
}

// discover reads the declaration of t and builds its Meta. Declaration
// defects (wrong shapes, duplicate values, colliding names) are programming
// errors and panic.
func discover(t reflect.Type) *Meta {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("enum: %v is not a struct type embedding enum.Instance", t))
	}

	m := &Meta{
		typ:     t,
		name:    t.Name(),
		byName:  map[string]int{},
		byValue: map[any]int{},
		byConst: map[string]int{},
		labels:  map[any]string{},
	}
	m.path, m.lineage = instancePath(t)

	decl, ok := reflect.Zero(t).Interface().(Declarer)
	if !ok {
		panic(fmt.Sprintf("enum: %v does not declare EnumValues", t))
	}
	dv := reflect.ValueOf(decl.EnumValues())
	if !dv.IsValid() || dv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("enum: %s EnumValues must return a declaration struct, got %T", m.name, decl.EnumValues()))
	}
	m.collect(dv)

	if m.hasDefault && m.defaultValue != nil && !reflect.ValueOf(m.defaultValue).Comparable() {
		panic(fmt.Sprintf("enum: %s declares a default of non-comparable type %T", m.name, m.defaultValue))
	}

	if lab, ok := decl.(Labeler); ok {
		for v, s := range lab.EnumLabels() {
			m.labels[v] = s
		}
	}
	if fb, ok := decl.(Fallbacker); ok {
		m.fallback = fb.EnumFallback()
	}

	return m
}

// collect walks the declaration struct. Anonymous struct fields are spliced
// in place so an embedded declaration contributes its constants at the
// position it occupies; a DEFAULT field sets the default instead of adding
// a constant, with later (outer) declarations overriding earlier ones.
func (m *Meta) collect(dv reflect.Value) {
	dt := dv.Type()
	for i := 0; i < dt.NumField(); i++ {
		field := dt.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			m.collect(dv.Field(i))
			continue
		}
		if !field.IsExported() {
			continue
		}
		value := dv.Field(i).Interface()
		if field.Name == DefaultConst {
			m.defaultValue = value
			m.hasDefault = true
			continue
		}
		m.addMember(field.Name, value)
	}
}

func (m *Meta) addMember(name string, value any) {
	if value != nil && !reflect.ValueOf(value).Comparable() {
		panic(fmt.Sprintf("enum: %s constant %s has non-comparable value type %T", m.name, name, value))
	}

	// A redeclared name shadows the inherited constant in place, keeping
	// its position in declaration order.
	if i, redeclared := m.byName[name]; redeclared {
		if j, taken := m.byValue[value]; taken && j != i {
			panic(fmt.Sprintf("enum: %s declares value %v more than once", m.name, value))
		}
		delete(m.byValue, m.members[i].Value)
		m.members[i].Value = value
		m.byValue[value] = i
		return
	}

	if _, taken := m.byValue[value]; taken {
		panic(fmt.Sprintf("enum: %s declares value %v more than once", m.name, value))
	}
	form := constName(name)
	if j, taken := m.byConst[form]; taken {
		panic(fmt.Sprintf("enum: %s constants %s and %s are indistinguishable to name predicates", m.name, m.members[j].Name, name))
	}

	m.members = append(m.members, Member{Name: name, Value: value})
	m.byName[name] = len(m.members) - 1
	m.byValue[value] = len(m.members) - 1
	m.byConst[form] = len(m.members) - 1
}

// instancePath locates the embedded Instance within t and records the
// refinement lineage along the way. A type either embeds Instance directly
// or embeds exactly one other enum type, which supplies both.
func instancePath(t reflect.Type) ([]int, []reflect.Type) {
	lineage := []reflect.Type{t}
	var path []int

	cur := t
	for {
		instIdx := -1
		parentIdx := -1
		for i := 0; i < cur.NumField(); i++ {
			field := cur.Field(i)
			if !field.Anonymous || field.Type.Kind() != reflect.Struct {
				continue
			}
			switch {
			case field.Type == instanceType:
				if instIdx >= 0 || parentIdx >= 0 {
					panic(fmt.Sprintf("enum: %v embeds more than one enum core", t))
				}
				instIdx = i
			case field.Type.Implements(declarerType):
				if instIdx >= 0 || parentIdx >= 0 {
					panic(fmt.Sprintf("enum: %v embeds more than one enum core", t))
				}
				parentIdx = i
			}
		}

		switch {
		case instIdx >= 0:
			return append(path, instIdx), lineage
		case parentIdx >= 0:
			parent := cur.Field(parentIdx).Type
			lineage = append(lineage, parent)
			path = append(path, parentIdx)
			cur = parent
		default:
			panic(fmt.Sprintf("enum: %v does not embed enum.Instance", t))
		}
	}
}

// resolve maps a construction input to its canonical constant value. A nil
// input takes the declared default (unless nil itself is a constant); an
// unknown value falls back to the default when the type opted into fallback
// and has one, and fails otherwise.
func (m *Meta) resolve(value any) (any, error) {
	if value == nil {
		if _, isMember := m.byValue[nil]; !isMember {
			value = m.defaultValue
		}
	}
	if i, ok := m.indexOf(value); ok {
		return m.members[i].Value, nil
	}
	if m.fallback && m.hasDefault {
		return m.defaultValue, nil
	}
	return nil, &InvalidValueError{Enum: m.name, Value: value}
}

func (m *Meta) indexOf(value any) (int, bool) {
	if value != nil && !reflect.ValueOf(value).Comparable() {
		return 0, false
	}
	i, ok := m.byValue[value]
	return i, ok
}

// Name returns the bare type name of the enum.
func (m *Meta) Name() string {
	return m.name
}

// Type returns the reflect.Type the metadata describes.
func (m *Meta) Type() reflect.Type {
	return m.typ
}

// Members returns the declared constants in declaration order.
func (m *Meta) Members() []Member {
	out := make([]Member, len(m.members))
	copy(out, m.members)
	return out
}

// Consts returns the declared constant names in declaration order.
func (m *Meta) Consts() []string {
	out := make([]string, len(m.members))
	for i, mem := range m.members {
		out[i] = mem.Name
	}
	return out
}

// Values returns the declared constant values in declaration order.
func (m *Meta) Values() []any {
	out := make([]any, len(m.members))
	for i, mem := range m.members {
		out[i] = mem.Value
	}
	return out
}

// Labels returns the display labels of all constants, in declaration order.
func (m *Meta) Labels() []string {
	out := make([]string, len(m.members))
	for i, mem := range m.members {
		out[i] = m.Label(mem.Value)
	}
	return out
}

// Choices returns value/label pairs for all constants, in declaration order.
func (m *Meta) Choices() []Choice {
	out := make([]Choice, len(m.members))
	for i, mem := range m.members {
		out[i] = Choice{Value: mem.Value, Label: m.Label(mem.Value)}
	}
	return out
}

// Default returns the declared default value as-is, and whether one was
// declared at all. The default is not required to be a member.
func (m *Meta) Default() (any, bool) {
	return m.defaultValue, m.hasDefault
}

// HasConst reports whether a constant with the exact given name is declared.
func (m *Meta) HasConst(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Has reports whether value is one of the declared constant values.
func (m *Meta) Has(value any) bool {
	_, ok := m.indexOf(value)
	return ok
}

// Label returns the display label for a constant value: the label table
// entry if one exists, otherwise the string form of the value itself.
func (m *Meta) Label(value any) string {
	if value == nil || reflect.ValueOf(value).Comparable() {
		m.mu.RLock()
		s, ok := m.labels[value]
		m.mu.RUnlock()
		if ok {
			return s
		}
	}
	return stringForm(value)
}

// SetLabel sets the display label for a constant value. It is intended for
// EnumInit hooks but safe to call at any time.
func (m *Meta) SetLabel(value any, label string) {
	if value != nil && !reflect.ValueOf(value).Comparable() {
		panic(fmt.Sprintf("enum: %s label key of non-comparable type %T", m.name, value))
	}
	m.mu.Lock()
	m.labels[value] = label
	m.mu.Unlock()
}

// SetLabels merges a label table into the type's labels, overwriting
// existing entries key by key.
func (m *Meta) SetLabels(labels map[any]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for v, s := range labels {
		m.labels[v] = s
	}
}

func (m *Meta) String() string {
	return fmt.Sprintf("enum.Meta(%v)", m.typ)
}
