package gomba

import (
	"testing"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
)

func TestWorldSpawnerLifecycle(t *testing.T) {
	tr := newTestRound(config.DefaultGombaConfig())
	base := tr.world.Len()

	p, ok := tr.spawner.Spawn(KindPatroller, core.V(1, 0.5))
	if !ok || p.Kind() != KindPatroller {
		t.Fatal("failed to spawn patroller")
	}
	a, ok := tr.spawner.Spawn(KindAxePatroller, core.V(2, 0.5))
	if !ok || a.Kind() != KindAxePatroller {
		t.Fatal("failed to spawn axe patroller")
	}
	if p.ID() == a.ID() {
		t.Error("enemy IDs should be unique")
	}
	if tr.world.Len() != base+3 {
		t.Errorf("world bodies = %d, want %d (patroller, axe patroller, axe)", tr.world.Len(), base+3)
	}

	if got, ok := tr.spawner.EnemyByBody(a.Body().ID); !ok || got != a {
		t.Error("EnemyByBody should resolve the axe patroller")
	}

	tr.spawner.Destroy(a)
	tr.spawner.Destroy(p)
	tr.spawner.Destroy(nil)
	if tr.world.Len() != base {
		t.Errorf("world bodies after destroy = %d, want %d", tr.world.Len(), base)
	}
	if _, ok := tr.spawner.EnemyByBody(a.Body().ID); ok {
		t.Error("destroyed enemy should no longer resolve")
	}
}

func TestWorldSpawnerRejectsUnknownKind(t *testing.T) {
	tr := newTestRound(config.DefaultGombaConfig())
	if _, ok := tr.spawner.Spawn(Kind(9), core.V(0, 0)); ok {
		t.Error("unknown kind should be rejected")
	}
}
