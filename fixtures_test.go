package enum

import "sync/atomic"

// Fixture enum types shared across the test files. Each one exercises a
// different slice of the declaration surface.

// Fruit has string constants and a partial label table: FOO and BAR are
// labeled, BAZ falls back to its value. No default.
type Fruit struct{ Instance }

func (Fruit) EnumValues() any {
	return struct {
		FOO string
		BAR string
		BAZ string
	}{"foo", "bar", "baz"}
}

func (Fruit) EnumLabels() map[any]string {
	return map[any]string{
		"foo": "Foo Text",
		"bar": "Bar Text",
	}
}

// Status has int constants and a default that is itself a member. No labels.
type Status struct{ Instance }

func (Status) EnumValues() any {
	return struct {
		ACTIVE   int
		INACTIVE int
		DELETED  int
		DEFAULT  any
	}{1, 2, 3, 1}
}

// Priority labels its constants procedurally through the one-time init
// hook; priorityInits counts hook invocations.
var priorityInits atomic.Int32

type Priority struct{ Instance }

func (Priority) EnumValues() any {
	return struct {
		LOW    string
		MEDIUM string
		HIGH   string
	}{"low", "medium", "high"}
}

func (Priority) EnumInit(m *Meta) {
	priorityInits.Add(1)
	for _, v := range m.Values() {
		m.SetLabel(v, "Priority: "+stringForm(v))
	}
}

// Channel opts into fallback construction and has a default to fall back to.
type Channel struct{ Instance }

func (Channel) EnumValues() any {
	return struct {
		EMAIL   string
		SMS     string
		DEFAULT any
	}{"email", "sms", "email"}
}

func (Channel) EnumFallback() bool { return true }

// Compass opts into fallback but declares no default, so unknown values
// still fail.
type Compass struct{ Instance }

func (Compass) EnumValues() any {
	return struct {
		NORTH string
		SOUTH string
	}{"north", "south"}
}

func (Compass) EnumFallback() bool { return true }

// Answer declares nil as an explicit constant, so constructing without a
// value selects NONE rather than a default.
type Answer struct{ Instance }

func (Answer) EnumValues() any {
	return struct {
		YES  string
		NO   string
		NONE any
	}{"yes", "no", nil}
}

// Role and AdminRole model refinement: AdminRole embeds Role and splices
// Role's declaration into its own, adding ROOT.
type roleDecl struct {
	USER  string
	STAFF string
}

type Role struct{ Instance }

func (Role) EnumValues() any {
	return roleDecl{"user", "staff"}
}

type AdminRole struct{ Role }

func (AdminRole) EnumValues() any {
	return struct {
		roleDecl
		ROOT string
	}{Role{}.EnumValues().(roleDecl), "root"}
}

// AuditRole embeds Role without overriding the declaration, inheriting
// Role's constants unchanged via method promotion.
type AuditRole struct{ Role }

// Mode and TunedMode exercise constant redeclaration: TunedMode splices
// Mode's declaration and rebinds SLOW to a new value in place.
type modeDecl struct {
	FAST string
	SLOW string
}

type Mode struct{ Instance }

func (Mode) EnumValues() any {
	return modeDecl{"fast", "slow"}
}

type TunedMode struct{ Mode }

func (TunedMode) EnumValues() any {
	return struct {
		modeDecl
		SLOW string
	}{Mode{}.EnumValues().(modeDecl), "slow-tuned"}
}

// CasedEnum has constant names with mixed word shapes for the name
// predicate tests.
type CasedEnum struct{ Instance }

func (CasedEnum) EnumValues() any {
	return struct {
		REMOTE_WORKER string
		HTTP_SERVER   string
		AREA_51       string
	}{"remote-worker", "http-server", "area-51"}
}
