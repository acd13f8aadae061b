//go:build generated

// Run after go generate: go test -tags generated ./pkg/ts3
package ts3_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ts3testing "github.com/ts3go/ts3plugin/internal/testing"
	"github.com/ts3go/ts3plugin/pkg/ts3"
)

const (
	server ts3.ServerID     = 1
	lobby  ts3.ChannelID    = 5
	afk    ts3.ChannelID    = 6
	me     ts3.ConnectionID = 7
)

func lobbyFetcher() *ts3testing.Fetcher {
	return ts3testing.NewFetcher().
		Set(ts3testing.ParentKey(server, lobby), ts3.ChannelID(0)).
		Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyName), "Lobby").
		Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyTopic), "welcome").
		Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyCodec), int32(4)).
		Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyFlagDefault), int32(1)).
		Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyDeleteDelay), int32(30))
}

func TestChannelStartsPending(t *testing.T) {
	ch, err := ts3.NewChannel(lobbyFetcher(), server, lobby)
	require.NoError(t, err)

	assert.Equal(t, lobby, ch.ID())
	assert.Equal(t, server, ch.ServerID())
	_, err = ch.Name()
	assert.ErrorIs(t, err, ts3.ErrNotFetched)

	// Explicit initializers run in the constructor.
	parent, err := ch.ParentChannelID()
	require.NoError(t, err)
	assert.Equal(t, ts3.ChannelID(0), parent)
}

func TestChannelUpdate(t *testing.T) {
	f := lobbyFetcher()
	ch, err := ts3.NewChannel(f, server, lobby)
	require.NoError(t, err)
	ch.Update()

	name, err := ch.Name()
	require.NoError(t, err)
	assert.Equal(t, "Lobby", name)

	codec, err := ch.Codec()
	require.NoError(t, err)
	assert.Equal(t, ts3.CodecOpusVoice, codec)
	assert.Equal(t, "OpusVoice", codec.String())

	isDefault, err := ch.IsDefault()
	require.NoError(t, err)
	assert.True(t, isDefault)

	delay, err := ch.DeleteDelay()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, delay)

	// Properties the host never answered fail on their own.
	_, err = ch.Password()
	assert.ErrorIs(t, err, ts3testing.ErrMissing)
}

func TestChannelUnknownCode(t *testing.T) {
	f := lobbyFetcher().Set(ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyCodec), int32(99))
	ch, err := ts3.NewChannel(f, server, lobby)
	require.NoError(t, err)
	ch.Update()

	_, err = ch.Codec()
	var decodeErr *ts3.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, int64(99), decodeErr.Raw)

	name, err := ch.Name()
	require.NoError(t, err)
	assert.Equal(t, "Lobby", name)
}

func TestChannelUpdateFrom(t *testing.T) {
	errHost := errors.New("host busy")
	topicKey := ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyTopic)
	nameKey := ts3testing.ChannelKey(server, lobby, ts3.ChannelPropertyName)

	stale, err := ts3.NewChannel(lobbyFetcher().Fail(nameKey, errHost), server, lobby)
	require.NoError(t, err)
	stale.Update()

	fresh, err := ts3.NewChannel(lobbyFetcher().Set(nameKey, "Lobby 2").Fail(topicKey, errHost), server, lobby)
	require.NoError(t, err)
	fresh.Update()

	stale.UpdateFrom(fresh)

	name, err := stale.Name()
	require.NoError(t, err)
	assert.Equal(t, "Lobby 2", name)

	// A value that loaded is kept even though the other snapshot failed.
	topic, err := stale.Topic()
	require.NoError(t, err)
	assert.Equal(t, "welcome", topic)

	stale.UpdateFrom(nil)
}

func TestChannelAPI(t *testing.T) {
	ch, err := ts3.NewChannel(lobbyFetcher(), server, lobby)
	require.NoError(t, err)
	ch.Update()

	api := ts3.NewChannelAPI(ts3.Ok(ch))
	name, err := api.Name()
	require.NoError(t, err)
	assert.Equal(t, "Lobby", name)
	id, err := api.ID()
	require.NoError(t, err)
	assert.Equal(t, lobby, id)

	gone := ts3.NewChannelAPI(ts3.Fail[*ts3.Channel](errors.New("channel deleted")))
	_, err = gone.Name()
	assert.ErrorIs(t, err, ts3.ErrNotReady)
	_, err = gone.ID()
	assert.ErrorIs(t, err, ts3.ErrNotReady)
}

func TestNewServer(t *testing.T) {
	f := lobbyFetcher().
		Set(ts3testing.ChannelListKey(server), []ts3.ChannelID{lobby, afk}).
		Set(ts3testing.ConnectionListKey(server), []ts3.ConnectionID{me}).
		Set(ts3testing.OwnConnectionKey(server), me).
		Set(ts3testing.ChannelOfKey(server, me), lobby).
		Set(ts3testing.ServerKey(server, ts3.ServerPropertyName), "home").
		Set(ts3testing.ClientKey(server, me, ts3.ClientPropertyNickname), "alice")

	srv, err := ts3.NewServer(f, server)
	require.NoError(t, err)

	assert.Len(t, srv.Channels(), 2)
	require.Contains(t, srv.Connections(), me)

	own, err := srv.OwnConnectionID()
	require.NoError(t, err)
	assert.Equal(t, me, own)

	conn := srv.Connections()[me]
	channel, err := conn.ChannelID()
	require.NoError(t, err)
	assert.Equal(t, lobby, channel)

	srv.Update()
	conn.Update()
	name, err := srv.Name()
	require.NoError(t, err)
	assert.Equal(t, "home", name)
	nick, err := conn.Name()
	require.NoError(t, err)
	assert.Equal(t, "alice", nick)

	// The afk channel has no parent stored; the failure stays on the field.
	_, err = srv.Channels()[afk].ParentChannelID()
	assert.ErrorIs(t, err, ts3testing.ErrMissing)
}

func TestNewServerListFailure(t *testing.T) {
	errHost := errors.New("not connected")
	f := ts3testing.NewFetcher().Fail(ts3testing.ChannelListKey(server), errHost)

	_, err := ts3.NewServer(f, server)
	assert.ErrorIs(t, err, errHost)
	assert.ErrorContains(t, err, "server 1: list channels")
}

func TestParseRejectsUnknownCodes(t *testing.T) {
	_, err := ts3.ParseAwayStatus(2)
	assert.EqualError(t, err, "ts3: unknown AwayStatus code 2")

	status, err := ts3.ParseTalkStatus(2)
	require.NoError(t, err)
	assert.Equal(t, ts3.TalkStatusTalkingWhileDisabled, status)
	assert.Equal(t, "TalkStatus(9)", ts3.TalkStatus(9).String())
	assert.Equal(t, int64(2), status.Code())
}
