package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/ambush/network"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/shared/netcomponents"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// NetworkedScene mirrors a server's world into a local donburi world and
// draws it. The level supplies the floor bounds only; enemies come from the
// server.
type NetworkedScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	level        *leveldata.Level
	world        donburi.World
	presentIDs   map[esync.NetworkId]bool
	logger       *log.Logger
}

func NewNetworkedScene(sc SceneChanger, client *network.Client, level *leveldata.Level) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		level:        level,
		world:        donburi.NewWorld(),
		presentIDs:   make(map[esync.NetworkId]bool),
		logger:       log.WithPrefix("networked"),
	}
}

func (ns *NetworkedScene) Update() {
	if ns.netClient.State() == network.StateJoined {
		x, z := moveInput()
		if err := ns.netClient.SendInput(x, z, time.Now().UnixMilli()); err != nil {
			ns.logger.Debug("send input", "err", err)
		}
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(ns.world, ent.Id)
		if !ns.world.Valid(entity) {
			entity = ns.world.Create(componentTypesFromInstances(compData)...)
			entry := ns.world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := ns.world.Entry(entity)
		for _, data := range compData {
			applyComponentToEntry(entry, data)
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(ns.world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id != nil && !ns.presentIDs[*id] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetEnemyData:
			ctypes = append(ctypes, netcomponents.NetEnemy)
		case netcomponents.NetPlayerData:
			ctypes = append(ctypes, netcomponents.NetPlayer)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetEnemyData:
		if !entry.HasComponent(netcomponents.NetEnemy) {
			entry.AddComponent(netcomponents.NetEnemy)
		}
		netcomponents.NetEnemy.SetValue(entry, v)
	case netcomponents.NetPlayerData:
		if !entry.HasComponent(netcomponents.NetPlayer) {
			entry.AddComponent(netcomponents.NetPlayer)
		}
		netcomponents.NetPlayer.SetValue(entry, v)
	case netcomponents.NetProjectileData:
		if !entry.HasComponent(netcomponents.NetProjectile) {
			entry.AddComponent(netcomponents.NetProjectile)
		}
		netcomponents.NetProjectile.SetValue(entry, v)
	}
}

func (ns *NetworkedScene) view() arenaView {
	v := arenaView{Width: ns.level.Width, Depth: ns.level.Depth}
	donburi.NewQuery(filter.Contains(netcomponents.NetEnemy)).Each(ns.world, func(e *donburi.Entry) {
		v.Enemies = append(v.Enemies, *netcomponents.NetEnemy.Get(e))
	})
	donburi.NewQuery(filter.Contains(netcomponents.NetPlayer)).Each(ns.world, func(e *donburi.Entry) {
		v.Players = append(v.Players, *netcomponents.NetPlayer.Get(e))
	})
	donburi.NewQuery(filter.Contains(netcomponents.NetProjectile)).Each(ns.world, func(e *donburi.Entry) {
		v.Projectiles = append(v.Projectiles, *netcomponents.NetProjectile.Get(e))
	})
	return v
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	v := ns.view()
	drawArena(screen, v)

	status := fmt.Sprintf("%s  %s  players %d  enemies %d",
		ns.level.Name, ns.netClient.State(), len(v.Players), len(v.Enemies))
	if err := ns.netClient.LastError(); err != nil {
		status += "\n" + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}
