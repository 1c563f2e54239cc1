package project

import (
	"sync"

	"github.com/vfg2006/adcreative-api/internal/domain"
)

// workspaces guarda o estado de projetos de cada usuário
type workspaces struct {
	mu    sync.Mutex
	items map[string]*domain.Workspace
}

func newWorkspaces() *workspaces {
	return &workspaces{
		items: make(map[string]*domain.Workspace),
	}
}

// update executa fn com o workspace do usuário sob o lock
func (w *workspaces) update(userID string, fn func(ws *domain.Workspace)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.items[userID]
	if !ok {
		ws = emptyWorkspace()
		w.items[userID] = ws
	}

	fn(ws)
}

// snapshot devolve uma cópia que pode ser serializada fora do lock
func (w *workspaces) snapshot(userID string) *domain.Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.items[userID]
	if !ok {
		return emptyWorkspace()
	}

	copied := *ws
	copied.Projects = append([]*domain.Project{}, ws.Projects...)
	if ws.Error != nil {
		msg := *ws.Error
		copied.Error = &msg
	}

	return &copied
}

// project busca um projeto no workspace sem criar o workspace
func (w *workspaces) project(userID, projectID string) *domain.Project {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.items[userID]
	if !ok {
		return nil
	}

	return findProject(ws, projectID)
}

func (w *workspaces) reset(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.items, userID)
}

func emptyWorkspace() *domain.Workspace {
	return &domain.Workspace{
		Projects: []*domain.Project{},
	}
}

func (w *workspaces) begin(userID string, generating bool) {
	w.update(userID, func(ws *domain.Workspace) {
		if generating {
			ws.IsGenerating = true
		} else {
			ws.IsLoading = true
		}
		ws.Error = nil
	})
}

// fail registra apenas o erro, sem tocar em projects ou current_project
func (w *workspaces) fail(userID string, err error) {
	w.update(userID, func(ws *domain.Workspace) {
		msg := err.Error()
		ws.Error = &msg
		ws.IsLoading = false
		ws.IsGenerating = false
	})
}

func (w *workspaces) done(userID string, fn func(ws *domain.Workspace)) {
	w.update(userID, func(ws *domain.Workspace) {
		if fn != nil {
			fn(ws)
		}
		ws.IsLoading = false
		ws.IsGenerating = false
	})
}

// replaceProject troca o projeto na lista e no current_project pelo mesmo ID
func replaceProject(ws *domain.Workspace, project *domain.Project) {
	for i, p := range ws.Projects {
		if p.ProjectID == project.ProjectID {
			ws.Projects[i] = project
		}
	}

	if ws.CurrentProject != nil && ws.CurrentProject.ProjectID == project.ProjectID {
		ws.CurrentProject = project
	}
}

func findProject(ws *domain.Workspace, projectID string) *domain.Project {
	for _, p := range ws.Projects {
		if p.ProjectID == projectID {
			return p
		}
	}
	return nil
}

// mergeVariation substitui a variação em todos os projetos que a contêm
func mergeVariation(ws *domain.Workspace, variation *domain.AdVariation) {
	apply := func(p *domain.Project) *domain.Project {
		for i, v := range p.AdVariations {
			if v.AdVariationID != variation.AdVariationID {
				continue
			}
			updated := *p
			updated.AdVariations = append([]*domain.AdVariation{}, p.AdVariations...)
			updated.AdVariations[i] = variation
			return &updated
		}
		return p
	}

	for i, p := range ws.Projects {
		ws.Projects[i] = apply(p)
	}

	if ws.CurrentProject != nil {
		ws.CurrentProject = apply(ws.CurrentProject)
	}
}
