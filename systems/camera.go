package systems

import (
	"math"

	"github.com/automoto/dreadhall/components"
	"github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera, deltaTime(e.World))

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	pos := components.Transform.Get(playerEntry).Position
	targetX, targetY := pos.X(), pos.Z()

	levelEntry, ok := components.Level.First(e.World)
	if ok && components.Level.Get(levelEntry).Level != nil {
		level := components.Level.Get(levelEntry).Level

		// Keep the level filling the screen when it is larger than the view
		halfW := float64(config.C.Width) / config.View.PixelsPerMeter / 2
		halfH := float64(config.C.Height) / config.View.PixelsPerMeter / 2
		targetX = clampView(targetX, halfW, level.Width)
		targetY = clampView(targetY, halfH, level.Depth)
	}

	camera.Position.X += (targetX - camera.Position.X) * config.View.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.View.FollowSmoothing
}

// clampView keeps a view of half extent half inside [0, size]. Levels
// smaller than the view are centered.
func clampView(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// SnapCamera centers the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(playerEntry).Position
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = pos.X()
	camera.Position.Y = pos.Z()
}

// updateScreenShake sets the camera's shake offset and counts the shake down
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt
	shake.Remaining -= dt

	// Calculate decaying intensity
	progress := 0.0
	if total := shake.Elapsed + shake.Remaining; total > 0 {
		progress = math.Max(0, shake.Remaining/total)
	}
	currentIntensity := shake.Intensity * progress

	// Oscillating offset using sine/cosine for smooth shake
	ticks := shake.Elapsed * config.TickRate
	camera.Shake.X = math.Sin(ticks*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(ticks*1.3) * currentIntensity

	if shake.Remaining <= 0 {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake of intensity pixels lasting
// duration seconds. A weaker shake does not replace a stronger one.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Remaining = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Remaining: duration,
	})
}
