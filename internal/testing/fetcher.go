// Package testing provides an in-memory ts3.Fetcher for tests.
package testing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ts3go/ts3plugin/pkg/ts3"
)

// ErrMissing is returned for keys that were never set.
var ErrMissing = errors.New("no value stored")

// Key addresses one fetchable value.
type Key struct {
	Namespace string
	Server    ts3.ServerID
	ID        uint64
	Property  int32
}

func ServerKey(server ts3.ServerID, p ts3.ServerProperty) Key {
	return Key{Namespace: "server", Server: server, Property: int32(p)}
}

func ChannelKey(server ts3.ServerID, channel ts3.ChannelID, p ts3.ChannelProperty) Key {
	return Key{Namespace: "channel", Server: server, ID: uint64(channel), Property: int32(p)}
}

func ConnectionKey(server ts3.ServerID, conn ts3.ConnectionID, p ts3.ConnectionProperty) Key {
	return Key{Namespace: "connection", Server: server, ID: uint64(conn), Property: int32(p)}
}

func ClientKey(server ts3.ServerID, conn ts3.ConnectionID, p ts3.ClientProperty) Key {
	return Key{Namespace: "client", Server: server, ID: uint64(conn), Property: int32(p)}
}

func OwnConnectionKey(server ts3.ServerID) Key {
	return Key{Namespace: "own-connection", Server: server}
}

func ChannelOfKey(server ts3.ServerID, conn ts3.ConnectionID) Key {
	return Key{Namespace: "channel-of", Server: server, ID: uint64(conn)}
}

func ParentKey(server ts3.ServerID, channel ts3.ChannelID) Key {
	return Key{Namespace: "parent", Server: server, ID: uint64(channel)}
}

func ChannelListKey(server ts3.ServerID) Key {
	return Key{Namespace: "channels", Server: server}
}

func ConnectionListKey(server ts3.ServerID) Key {
	return Key{Namespace: "connections", Server: server}
}

// Fetcher serves values stored with Set and errors stored with Fail.
// It is safe for concurrent use.
type Fetcher struct {
	mu     sync.Mutex
	values map[Key]any
	errs   map[Key]error
	calls  map[Key]int
}

var _ ts3.Fetcher = (*Fetcher)(nil)

func NewFetcher() *Fetcher {
	return &Fetcher{
		values: map[Key]any{},
		errs:   map[Key]error{},
		calls:  map[Key]int{},
	}
}

// Set stores v under k and clears a stored error.
func (f *Fetcher) Set(k Key, v any) *Fetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[k] = v
	delete(f.errs, k)
	return f
}

// Fail makes every fetch of k return err.
func (f *Fetcher) Fail(k Key, err error) *Fetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[k] = err
	return f
}

// Calls returns how often k was fetched.
func (f *Fetcher) Calls(k Key) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[k]
}

func get[T any](f *Fetcher, k Key) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[k]++

	var zero T
	if err, ok := f.errs[k]; ok {
		return zero, err
	}
	raw, ok := f.values[k]
	if !ok {
		return zero, fmt.Errorf("%s %d/%d property %d: %w", k.Namespace, k.Server, k.ID, k.Property, ErrMissing)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%s %d/%d property %d holds %T, not %T", k.Namespace, k.Server, k.ID, k.Property, raw, zero)
	}
	return v, nil
}

func (f *Fetcher) ServerVariableAsInt(s ts3.ServerID, p ts3.ServerProperty) (int32, error) {
	return get[int32](f, ServerKey(s, p))
}

func (f *Fetcher) ServerVariableAsUint64(s ts3.ServerID, p ts3.ServerProperty) (uint64, error) {
	return get[uint64](f, ServerKey(s, p))
}

func (f *Fetcher) ServerVariableAsString(s ts3.ServerID, p ts3.ServerProperty) (string, error) {
	return get[string](f, ServerKey(s, p))
}

func (f *Fetcher) ServerVariableAsServerGroupID(s ts3.ServerID, p ts3.ServerProperty) (ts3.ServerGroupID, error) {
	return get[ts3.ServerGroupID](f, ServerKey(s, p))
}

func (f *Fetcher) ServerVariableAsChannelGroupID(s ts3.ServerID, p ts3.ServerProperty) (ts3.ChannelGroupID, error) {
	return get[ts3.ChannelGroupID](f, ServerKey(s, p))
}

func (f *Fetcher) ChannelVariableAsInt(s ts3.ServerID, c ts3.ChannelID, p ts3.ChannelProperty) (int32, error) {
	return get[int32](f, ChannelKey(s, c, p))
}

func (f *Fetcher) ChannelVariableAsUint64(s ts3.ServerID, c ts3.ChannelID, p ts3.ChannelProperty) (uint64, error) {
	return get[uint64](f, ChannelKey(s, c, p))
}

func (f *Fetcher) ChannelVariableAsString(s ts3.ServerID, c ts3.ChannelID, p ts3.ChannelProperty) (string, error) {
	return get[string](f, ChannelKey(s, c, p))
}

func (f *Fetcher) ChannelVariableAsChannelID(s ts3.ServerID, c ts3.ChannelID, p ts3.ChannelProperty) (ts3.ChannelID, error) {
	return get[ts3.ChannelID](f, ChannelKey(s, c, p))
}

func (f *Fetcher) ConnectionVariableAsInt(s ts3.ServerID, c ts3.ConnectionID, p ts3.ConnectionProperty) (int32, error) {
	return get[int32](f, ConnectionKey(s, c, p))
}

func (f *Fetcher) ConnectionVariableAsUint64(s ts3.ServerID, c ts3.ConnectionID, p ts3.ConnectionProperty) (uint64, error) {
	return get[uint64](f, ConnectionKey(s, c, p))
}

func (f *Fetcher) ConnectionVariableAsString(s ts3.ServerID, c ts3.ConnectionID, p ts3.ConnectionProperty) (string, error) {
	return get[string](f, ConnectionKey(s, c, p))
}

func (f *Fetcher) ConnectionVariableAsDouble(s ts3.ServerID, c ts3.ConnectionID, p ts3.ConnectionProperty) (float64, error) {
	return get[float64](f, ConnectionKey(s, c, p))
}

func (f *Fetcher) ClientVariableAsInt(s ts3.ServerID, c ts3.ConnectionID, p ts3.ClientProperty) (int32, error) {
	return get[int32](f, ClientKey(s, c, p))
}

func (f *Fetcher) ClientVariableAsUint64(s ts3.ServerID, c ts3.ConnectionID, p ts3.ClientProperty) (uint64, error) {
	return get[uint64](f, ClientKey(s, c, p))
}

func (f *Fetcher) ClientVariableAsString(s ts3.ServerID, c ts3.ConnectionID, p ts3.ClientProperty) (string, error) {
	return get[string](f, ClientKey(s, c, p))
}

func (f *Fetcher) OwnConnectionID(s ts3.ServerID) (ts3.ConnectionID, error) {
	return get[ts3.ConnectionID](f, OwnConnectionKey(s))
}

func (f *Fetcher) ChannelOfConnection(s ts3.ServerID, c ts3.ConnectionID) (ts3.ChannelID, error) {
	return get[ts3.ChannelID](f, ChannelOfKey(s, c))
}

func (f *Fetcher) ParentChannelOfChannel(s ts3.ServerID, c ts3.ChannelID) (ts3.ChannelID, error) {
	return get[ts3.ChannelID](f, ParentKey(s, c))
}

func (f *Fetcher) ChannelList(s ts3.ServerID) ([]ts3.ChannelID, error) {
	return get[[]ts3.ChannelID](f, ChannelListKey(s))
}

func (f *Fetcher) ConnectionList(s ts3.ServerID) ([]ts3.ConnectionID, error) {
	return get[[]ts3.ConnectionID](f, ConnectionListKey(s))
}
