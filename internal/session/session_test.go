package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Lifecycle(t *testing.T) {
	t.Run("create then get round-trips", func(t *testing.T) {
		r := NewRegistry()
		s := r.Create()
		require.Equal(t, Created, s.State)

		got, err := r.Get(s.ID)
		require.NoError(t, err)
		require.Equal(t, s.ID, got.ID)
	})

	t.Run("get unknown id fails", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Get(r.Create().ID)
		require.NoError(t, err)

		s2 := r.Create()
		require.NoError(t, r.Cleanup(s2.ID))
		_, err = r.Get(s2.ID)
		require.Error(t, err)
	})

	t.Run("update state transitions", func(t *testing.T) {
		r := NewRegistry()
		s := r.Create()
		require.NoError(t, r.UpdateState(s.ID, Running))
		got, _ := r.Get(s.ID)
		require.Equal(t, Running, got.State)
	})
}

func TestRegistry_SaveLoadRoundTrip(t *testing.T) {
	for _, state := range []State{Created, Attached, Running, Stopped, Terminated} {
		t.Run(string(state), func(t *testing.T) {
			r := NewRegistry()
			s := r.Create()
			path := "/bin/target"
			pid := uint64(4242)
			thread := uint32(7)
			s.TargetPath = &path
			s.ProcessID = &pid
			s.CurrentThreadID = &thread
			s.CurrentFrameIndex = 2
			s.HasTarget = true
			s.HasProcess = true
			s.HasThread = true
			require.NoError(t, r.UpdateState(s.ID, state))

			data, err := r.Save(s.ID)
			require.NoError(t, err)

			r2 := NewRegistry()
			loaded, err := r2.Load(data)
			require.NoError(t, err)

			require.Equal(t, s.ID, loaded.ID)
			require.Equal(t, state, loaded.State)
			require.Equal(t, *s.TargetPath, *loaded.TargetPath)
			require.Equal(t, *s.ProcessID, *loaded.ProcessID)
			require.Equal(t, *s.CurrentThreadID, *loaded.CurrentThreadID)
			require.Equal(t, s.CurrentFrameIndex, loaded.CurrentFrameIndex)
			require.True(t, loaded.HasTarget)
			require.True(t, loaded.HasProcess)
			require.True(t, loaded.HasThread)
		})
	}

	t.Run("unknown state string defaults to Created", func(t *testing.T) {
		r := NewRegistry()
		s := r.Create()
		data, err := r.Save(s.ID)
		require.NoError(t, err)

		mangled := []byte(`{"session_id":"` + s.ID.String() + `","state":"Bogus","created_at":0,"target_path":null,"process_id":null,"current_thread_id":null,"current_frame_index":0,"has_target":false,"has_process":false,"has_thread":false,"saved_at":0}`)
		_ = data

		r2 := NewRegistry()
		loaded, err := r2.Load(mangled)
		require.NoError(t, err)
		require.Equal(t, Created, loaded.State)
	})
}
