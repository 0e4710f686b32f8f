package core

import (
	"github.com/automoto/ambush/shared/netcomponents"
	"github.com/automoto/ambush/sim"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// mirror copies simulation state into the net components. Entities seen for
// the first time get their net component and are marked for sync.
func (s *Server) mirror() {
	for _, e := range s.sim.Enemies() {
		if !e.HasComponent(netcomponents.NetEnemy) {
			e.AddComponent(netcomponents.NetEnemy)
			s.markSynced(e, netcomponents.NetEnemy)
		}
		netcomponents.NetEnemy.SetValue(e, sim.NetEnemy(e))
	}

	for _, e := range s.sim.Players() {
		if !e.HasComponent(netcomponents.NetPlayer) {
			e.AddComponent(netcomponents.NetPlayer)
			s.markSynced(e, netcomponents.NetPlayer)
		}
		data := sim.NetPlayer(e)
		data.LastSequence = s.lastSequence(e.Entity())
		netcomponents.NetPlayer.SetValue(e, data)
	}

	for _, e := range s.sim.Projectiles() {
		if !e.HasComponent(netcomponents.NetProjectile) {
			e.AddComponent(netcomponents.NetProjectile)
			s.markSynced(e, netcomponents.NetProjectile)
		}
		netcomponents.NetProjectile.SetValue(e, sim.NetProjectile(e))
	}
}

func (s *Server) markSynced(e *donburi.Entry, c donburi.IComponentType) {
	entity := e.Entity()
	if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(c)); err != nil {
		s.logger.Warn("network sync setup failed", "entity", entity, "err", err)
	}
}

func (s *Server) lastSequence(player donburi.Entity) uint32 {
	for _, c := range s.clients {
		if c.alive && c.player == player {
			return c.lastSeq
		}
	}
	return 0
}
