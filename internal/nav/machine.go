package nav

// Machine keeps the active stage and the current path in sync, in both
// directions. The two sync operations are deliberately asymmetric:
//
//   - SyncFromPath (path → stage) runs when the location changed under us:
//     startup, deep link, history back/forward.
//   - SetStage / syncToPath (stage → path) runs when the app changed stage.
//
// Each side checks for an actual difference before writing, which is what
// keeps the pair from ping-ponging: re-running either sync on unchanged
// input performs zero writes and zero navigation calls.
type Machine struct {
	nav Navigator

	stage     Stage
	dreamID   string
	section   string
	roadmapID string
	joinCode  string

	onStage []func(Stage)
}

// NewMachine builds a machine over the navigator and reconstructs the
// initial stage from the current path.
func NewMachine(nav Navigator) *Machine {
	m := &Machine{nav: nav, stage: StageLoading}
	m.SyncFromPath()
	return m
}

func (m *Machine) Stage() Stage      { return m.stage }
func (m *Machine) Path() string      { return m.nav.Path() }
func (m *Machine) DreamID() string   { return m.dreamID }
func (m *Machine) Section() string   { return m.section }
func (m *Machine) RoadmapID() string { return m.roadmapID }
func (m *Machine) JoinCode() string  { return m.joinCode }

// OnStageChange registers a listener invoked after the stage actually
// changes. Listeners fire for both sync directions.
func (m *Machine) OnStageChange(fn func(Stage)) {
	m.onStage = append(m.onStage, fn)
}

func (m *Machine) setStage(s Stage) {
	if s == m.stage {
		return
	}
	m.stage = s
	for _, fn := range m.onStage {
		fn(s)
	}
}

// SyncFromPath resolves the navigator's current path and updates stage and
// ambient route state. Unknown paths force a redirect to root with the
// history entry replaced, so back never returns to the invalid path; the
// redirect is skipped when the stage is already landing or the path is a
// special route owned by another flow.
func (m *Machine) SyncFromPath() {
	path := m.nav.Path()
	res := ResolveStage(path)
	if !res.Matched {
		if SpecialPath(path) {
			return
		}
		if m.stage != StageLanding && path != RootPath {
			m.nav.Replace(RootPath)
			m.setStage(StageLanding)
		}
		return
	}

	if res.DreamID != "" && res.DreamID != m.dreamID {
		m.dreamID = res.DreamID
	}
	if res.Stage == StageMilestoneDetail && res.Section != m.section {
		m.section = res.Section
	}
	if res.JoinCode != "" {
		m.joinCode = res.JoinCode
	}
	if res.RoadmapID != "" {
		m.roadmapID = res.RoadmapID
	}
	m.setStage(res.Stage)
}

// SetStage changes the active stage and pushes the stage's path onto the
// history when it differs from the current one.
func (m *Machine) SetStage(s Stage) {
	m.setStage(s)
	m.syncToPath()
}

// OpenDream navigates to the milestone-detail stage for a dream. An empty
// section means overview.
func (m *Machine) OpenDream(dreamID, section string) {
	m.dreamID = dreamID
	if section == "" {
		section = SectionOverview
	}
	m.section = section
	m.setStage(StageMilestoneDetail)
	m.syncToPath()
}

// OpenRoadmap navigates to the roadmap-profile stage for a roadmap id.
func (m *Machine) OpenRoadmap(roadmapID string) {
	m.roadmapID = roadmapID
	m.setStage(StageRoadmapProfile)
	m.syncToPath()
}

// SetSection switches the milestone-detail section and re-syncs the path.
func (m *Machine) SetSection(section string) {
	if !ValidSections[section] || section == m.section {
		return
	}
	m.section = section
	m.syncToPath()
}

// forceStage sets the stage without touching the path. Used by the gate on
// special routes, where the route-sync reducer owns navigation.
func (m *Machine) forceStage(s Stage) {
	m.setStage(s)
}

// setJoinCode stores an extracted assessment join code in ambient state.
func (m *Machine) setJoinCode(code string) {
	m.joinCode = code
}

func (m *Machine) syncToPath() {
	target := PathFor(m.stage, Params{
		DreamID:   m.dreamID,
		Section:   m.section,
		RoadmapID: m.roadmapID,
	})
	// Navigate only on an actual difference. This check is the loop guard
	// between the two sync directions.
	if target != m.nav.Path() {
		m.nav.Push(target)
	}
}

// Back pops history and re-syncs the stage from the resulting path.
func (m *Machine) Back() bool {
	if !m.nav.Back() {
		return false
	}
	m.SyncFromPath()
	return true
}

// Forward advances history and re-syncs the stage.
func (m *Machine) Forward() bool {
	if !m.nav.Forward() {
		return false
	}
	m.SyncFromPath()
	return true
}

// Open deep-links to an arbitrary path: the path is pushed and the stage
// re-synced, exactly as if the location changed under the app.
func (m *Machine) Open(path string) {
	if path != m.nav.Path() {
		m.nav.Push(path)
	}
	m.SyncFromPath()
}
