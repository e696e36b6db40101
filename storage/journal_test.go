package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/arp/internal/testing"
	"go.dedis.ch/arp/types"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := NewJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func Test_Journal_Creates_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewJournal(path)
	require.NoError(t, err)
	defer j.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	n, err := j.Count()
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func Test_Journal_Record_And_Decode(t *testing.T) {
	j := newTestJournal(t)

	evt := types.ScoreUpdatedEvent{
		Address:  "0x01",
		OldScore: 83,
		Score:    111,
		OldTier:  types.Established,
		Tier:     types.Elite,
	}
	require.NoError(t, j.Record(evt))
	require.NoError(t, j.Record(types.AgentRegisteredEvent{Address: "0x02", AgentName: "bob"}))

	entries, err := j.List("0x01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, evt.Name(), entries[0].Name)

	var decoded types.ScoreUpdatedEvent
	require.NoError(t, entries[0].Decode(&decoded))
	require.Equal(t, evt, decoded)

	all, err := j.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Less(t, all[0].Seq, all[1].Seq)
}

// The journal attached to the registry follows the protocol.
func Test_Journal_Attached(t *testing.T) {
	j := newTestJournal(t)
	p := z.NewTestProtocol(t)
	j.Attach(p.Registry)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)
	p.MustTransact(a.Address, b.Address, 5)
	_, err := p.Slash(a.Address, "spam")
	require.NoError(t, err)

	n, err := j.Count()
	require.NoError(t, err)
	require.Equal(t, len(p.Registry.GetEvents()), n)

	slashes, err := j.ListByName(types.SlashedEvent{}.Name())
	require.NoError(t, err)
	require.Len(t, slashes, 1)

	var slashed types.SlashedEvent
	require.NoError(t, slashes[0].Decode(&slashed))
	require.Equal(t, 5.0, slashed.Result.Remaining)
	require.Equal(t, a.Address, slashes[0].Subject)
}

// Entries survive a reopening.
func Test_Journal_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(types.VoteCastEvent{CaseID: "COUNCIL-1", Juror: "0x01", Guilty: true}))
	require.NoError(t, j.Close())

	j, err = NewJournal(path)
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.List("COUNCIL-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
