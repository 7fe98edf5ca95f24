package systems

import (
	"cmp"
	"math"
	"slices"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/automoto/amor-galactico/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves bullet-enemy hits, then player-enemy contacts.
//
// Hits are collected in a single pass and removed afterwards. Each bullet
// and each enemy is claimed at most once per step, so three entities in
// range of each other score exactly one pair.
func UpdateCollisions(e *ecs.ECS) {
	game := GetGame(e)
	rng := GetRandom(e).Rand
	claimed := make(map[donburi.Entity]bool)
	var toDestroy []*donburi.Entry

	for _, bulletEntry := range sortedBySeq(e, components.Bullet.Each, bulletSeq) {
		bx, by := factory.BulletCenter(components.Position.Get(bulletEntry))
		target := nearestEnemy(e, components.Object.Get(bulletEntry).Object, bx, by, claimed)
		if target == nil {
			continue
		}
		claimed[bulletEntry.Entity()] = true
		claimed[target.Entity()] = true
		toDestroy = append(toDestroy, bulletEntry, target)

		ex, ey := factory.EnemyCenter(components.Position.Get(target), components.Enemy.Get(target))
		factory.SpawnParticleBurst(e, ex, ey, cfg.Particle.EnemyBurst, rng)
		game.Score += cfg.Level.PointsPerEnemy
		PlaySFX(e, cfg.SoundHit)
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		px, py := factory.PlayerCenter(components.Position.Get(playerEntry), player)
		obj := components.Object.Get(playerEntry).Object

		for _, enemyEntry := range enemyCandidates(e, obj) {
			if game.Mode != cfg.ModePlaying {
				break
			}
			if claimed[enemyEntry.Entity()] {
				continue
			}
			ex, ey := factory.EnemyCenter(components.Position.Get(enemyEntry), components.Enemy.Get(enemyEntry))
			if math.Hypot(px-ex, py-ey) >= cfg.Collision.HitDistance {
				continue
			}
			claimed[enemyEntry.Entity()] = true
			toDestroy = append(toDestroy, enemyEntry)
			factory.SpawnParticleBurst(e, px, py, cfg.Particle.PlayerBurst, rng)
			LoseLife(e)
		}
	}

	destroy(toDestroy)
}

// nearestEnemy returns the closest unclaimed enemy within hit distance of
// (x, y). Ties go to the older enemy.
func nearestEnemy(e *ecs.ECS, obj *resolv.Object, x, y float64, claimed map[donburi.Entity]bool) *donburi.Entry {
	var best *donburi.Entry
	bestDist := cfg.Collision.HitDistance

	for _, enemyEntry := range enemyCandidates(e, obj) {
		if claimed[enemyEntry.Entity()] {
			continue
		}
		ex, ey := factory.EnemyCenter(components.Position.Get(enemyEntry), components.Enemy.Get(enemyEntry))
		if d := math.Hypot(x-ex, y-ey); d < bestDist {
			best, bestDist = enemyEntry, d
		}
	}
	return best
}

// enemyCandidates returns enemies whose hit boxes share a space cell with obj,
// ordered by spawn sequence. Without a space every enemy is a candidate.
func enemyCandidates(e *ecs.ECS, obj *resolv.Object) []*donburi.Entry {
	if obj == nil || obj.Space == nil {
		return sortedBySeq(e, components.Enemy.Each, enemySeq)
	}

	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			out = append(out, entry)
		}
	}
	slices.SortFunc(out, func(a, b *donburi.Entry) int { return cmp.Compare(enemySeq(a), enemySeq(b)) })
	return slices.CompactFunc(out, func(a, b *donburi.Entry) bool { return a.Entity() == b.Entity() })
}

type eachFunc func(donburi.World, func(*donburi.Entry))

func sortedBySeq(e *ecs.ECS, each eachFunc, seq func(*donburi.Entry) uint64) []*donburi.Entry {
	var out []*donburi.Entry
	each(e.World, func(entry *donburi.Entry) { out = append(out, entry) })
	slices.SortFunc(out, func(a, b *donburi.Entry) int { return cmp.Compare(seq(a), seq(b)) })
	return out
}

func bulletSeq(entry *donburi.Entry) uint64 { return components.Bullet.Get(entry).Seq }
func enemySeq(entry *donburi.Entry) uint64  { return components.Enemy.Get(entry).Seq }
