package emitter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/emitter"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

func problems(t *testing.T, md *meta.Metadata) []string {
	t.Helper()
	err := emitter.Validate(md)
	if err == nil {
		return nil
	}
	var verr *emitter.ValidationError
	require.True(t, errors.As(err, &verr))
	out := make([]string, 0, len(verr.Problems))
	for _, p := range verr.Problems {
		out = append(out, p.String())
	}
	return out
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	md := metadata(channelEntity(
		idProperty(),
		channelBase().Name("name").Type(descriptor.String()).Finalize(),
		channelBase().Name("codec").Type(descriptor.Enum("Codec")).Finalize(),
		channelBase().Name("max_clients").Type(descriptor.Int32()).Fallible(false).Finalize(),
	))
	assert.NoError(t, emitter.Validate(md))
}

func TestValidateProperties(t *testing.T) {
	type testCase struct {
		name string
		prop descriptor.Property
		want string
	}

	testCases := []testCase{
		{
			name: "no initializer",
			prop: channelBase().Name("ping_deviation").Type(descriptor.Float64()).Finalize(),
			want: "Channel.ping_deviation: no initializer: set an explicit initializer, an accessor or a function for float64",
		},
		{
			name: "incomplete type",
			prop: channelBase().Name("parent").Type(descriptor.Named("")).Finalize(),
			want: "Channel.parent: incomplete type",
		},
		{
			name: "invalid identifier",
			prop: channelBase().Name("2nd_name").Type(descriptor.String()).Finalize(),
			want: "Channel.2nd_name: field \"2ndName\" is not a valid Go identifier",
		},
		{
			name: "duplicate field",
			prop: channelBase().Name("ID").Type(descriptor.String()).Finalize(),
			want: "Channel.ID: field id is already used by id",
		},
		{
			name: "constructor local collides with a parameter",
			prop: channelBase().Name("server_id").Type(descriptor.Named("ServerID")).
				Initializer("Ok(serverID)").
				Finalize(),
			want: "Channel.server_id: initializer local serverID collides with a constructor parameter or err",
		},
		{
			name: "local named err",
			prop: channelBase().Name("err").Type(descriptor.String()).Finalize(),
			want: "Channel.err: initializer local err collides with a constructor parameter or err",
		},
		{
			name: "undeclared enum",
			prop: channelBase().Name("talking").Type(descriptor.Enum("TalkStatus")).
				Reinterpretable(descriptor.Enum("TalkStatus")).
				Finalize(),
			want: "Channel.talking: enum TalkStatus is reinterpreted but not declared",
		},
		{
			name: "missing call site",
			prop: descriptor.NewProperty().Name("topic").Type(descriptor.String()).
				Namespace("ChannelProperty").
				Function(descriptor.String(), "ChannelVariableAsString").
				Finalize(),
			want: "Channel.topic: update fetch has no call site",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := problems(t, metadata(channelEntity(idProperty(), tc.prop)))
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestValidateMethodClash(t *testing.T) {
	md := metadata(channelEntity(
		idProperty(),
		channelBase().Name("update").Type(descriptor.String()).Finalize(),
	))
	assert.Contains(t, problems(t, md), "Channel.update: method Update is already used by update")

	md = metadata(channelEntity(
		idProperty(),
		channelBase().Name("name").Type(descriptor.String()).Finalize(),
		channelBase().Name("NAME").Type(descriptor.String()).Finalize(),
	))
	assert.Contains(t, problems(t, md), "Channel.NAME: field name is already used by name")
}

func TestValidateGroupedParams(t *testing.T) {
	e := descriptor.NewEntity("Channel").
		APIName("ChannelAPI").
		Params("fetcher Fetcher", "serverID, id ChannelID").
		Properties(
			channelBase().Name("id").Type(descriptor.Named("ChannelID")).
				Initializer("Ok(id)").
				Finalize(),
		).
		Finalize()
	assert.Contains(t, problems(t, metadata(e)),
		"Channel.id: initializer local id collides with a constructor parameter or err")
}

func TestValidateAPIWithoutType(t *testing.T) {
	e := descriptor.NewEntity("Channel").
		Params("fetcher Fetcher", "serverID ServerID", "id ChannelID").
		Properties(idProperty()).
		Finalize()
	assert.Contains(t, problems(t, metadata(e)), "Channel.id: exposed on the API but Channel has no API type")
}

func TestValidateEnums(t *testing.T) {
	type testCase struct {
		name string
		enum descriptor.EnumDef
		want string
	}

	testCases := []testCase{
		{
			name: "duplicate code",
			enum: descriptor.NewEnum("Mode").Variant("A", 1, "").Variant("B", 1, "").Finalize(),
			want: "enum Mode: variants A and B share code 1",
		},
		{
			name: "duplicate variant",
			enum: descriptor.NewEnum("Mode").Variant("A", 1, "").Variant("A", 2, "").Finalize(),
			want: "enum Mode: duplicate variant A",
		},
		{
			name: "no variants",
			enum: descriptor.NewEnum("Mode").Finalize(),
			want: "enum Mode: no variants declared",
		},
		{
			name: "out of range",
			enum: descriptor.NewEnum("Mode").Underlying(descriptor.Uint8()).Variant("A", 256, "").Finalize(),
			want: "enum Mode: code 256 of A does not fit uint8",
		},
		{
			name: "not an integer",
			enum: descriptor.NewEnum("Mode").Underlying(descriptor.String()).Variant("A", 0, "").Finalize(),
			want: "enum Mode: underlying type string is not an integer",
		},
		{
			name: "clashes with another enum",
			enum: codecEnum(),
			want: "enum Codec: Codec is already declared by enum Codec",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			md := metadata()
			md.Enums = append(md.Enums, tc.enum)
			assert.Contains(t, problems(t, md), tc.want)
		})
	}
}

func TestValidateEntityNames(t *testing.T) {
	md := metadata(channelEntity(idProperty()), channelEntity(idProperty()))
	got := problems(t, md)
	assert.Contains(t, got, "entity Channel: Channel is already declared by entity Channel")
	assert.Contains(t, got, "entity Channel: NewChannel is already declared by entity Channel")

	md = metadata(channelEntity(idProperty()))
	md.Package = "ts-3"
	assert.Contains(t, problems(t, md), "package: \"ts-3\" is not a valid package name")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &emitter.ValidationError{Problems: []emitter.Problem{
		{Scope: "Channel.name", Message: "first"},
		{Scope: "enum Codec", Message: "second"},
	}}
	assert.Equal(t, "2 invalid descriptor(s):\n  Channel.name: first\n  enum Codec: second", err.Error())
}
