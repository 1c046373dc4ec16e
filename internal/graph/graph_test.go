package graph

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cragstore/internal/models"
)

type memStore struct {
	areas  map[string]*models.Area
	climbs map[string]*models.Climb
}

func newMemStore() *memStore {
	return &memStore{areas: map[string]*models.Area{}, climbs: map[string]*models.Climb{}}
}

func (m *memStore) AreaByUUID(_ context.Context, id string) (*models.Area, error) {
	a, ok := m.areas[id]
	if !ok {
		return nil, errors.New("area not found")
	}
	return a, nil
}

func (m *memStore) ChildAreas(_ context.Context, a *models.Area) ([]models.Area, error) {
	var out []models.Area
	for _, cand := range m.areas {
		for _, oid := range a.Children {
			if cand.ID == oid {
				out = append(out, *cand)
			}
		}
	}
	return out, nil
}

func (m *memStore) SearchAreas(_ context.Context, q string, limit int) ([]models.Area, error) {
	var out []models.Area
	for _, a := range m.areas {
		if len(out) < limit && strings.Contains(strings.ToLower(a.AreaName), strings.ToLower(q)) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) ClimbByUUID(_ context.Context, id string) (*models.Climb, error) {
	c, ok := m.climbs[id]
	if !ok {
		return nil, errors.New("climb not found")
	}
	return c, nil
}

func (m *memStore) ClimbsForArea(_ context.Context, areaID string) ([]models.Climb, error) {
	var out []models.Climb
	for _, c := range m.climbs {
		if c.Metadata.AreaID == areaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memStore) InsertArea(_ context.Context, a *models.Area) error {
	m.areas[a.Metadata.AreaID] = a
	return nil
}

func (m *memStore) AttachChild(_ context.Context, parentUUID string, child primitive.ObjectID) error {
	p, ok := m.areas[parentUUID]
	if !ok {
		return errors.New("parent not found")
	}
	p.Children = append(p.Children, child)
	p.Metadata.Leaf = false
	return nil
}

func (m *memStore) InsertClimb(_ context.Context, cl *models.Climb) error {
	m.climbs[cl.Metadata.ClimbID] = cl
	return nil
}

func (m *memStore) BumpClimbCount(_ context.Context, areaIDs []string, delta int) error {
	for _, id := range areaIDs {
		if a, ok := m.areas[id]; ok {
			a.TotalClimbs += delta
		}
	}
	return nil
}

func exec(t *testing.T, schema graphql.Schema, query string, vars map[string]any) map[string]any {
	t.Helper()
	res := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
	if len(res.Errors) > 0 {
		t.Fatalf("query failed: %v", res.Errors)
	}
	return res.Data.(map[string]any)
}

func TestAreaQuery(t *testing.T) {
	ds := newMemStore()
	usa := models.NewArea("USA", nil)
	utah := models.NewArea("Utah", usa)
	usa.Children = append(usa.Children, utah.ID)
	usa.Metadata.Leaf = false
	ds.areas[usa.Metadata.AreaID] = usa
	ds.areas[utah.Metadata.AreaID] = utah

	schema, err := NewSchema(ds)
	if err != nil {
		t.Fatal(err)
	}

	data := exec(t, schema,
		`query($id: String!) { area(uuid: $id) { areaName pathTokens leaf children { areaName } } }`,
		map[string]any{"id": usa.Metadata.AreaID})

	area := data["area"].(map[string]any)
	if area["areaName"] != "USA" {
		t.Errorf("areaName %v", area["areaName"])
	}
	if leaf := area["leaf"].(bool); leaf {
		t.Error("area with children reported as leaf")
	}
	children := area["children"].([]any)
	if len(children) != 1 || children[0].(map[string]any)["areaName"] != "Utah" {
		t.Errorf("children %v", children)
	}
}

func TestAddAreaMutationBuildsPath(t *testing.T) {
	ds := newMemStore()
	usa := models.NewArea("USA", nil)
	ds.areas[usa.Metadata.AreaID] = usa

	schema, err := NewSchema(ds)
	if err != nil {
		t.Fatal(err)
	}

	data := exec(t, schema,
		`mutation($p: String!) { addArea(name: "Utah", parentUuid: $p) { uuid pathTokens } }`,
		map[string]any{"p": usa.Metadata.AreaID})

	added := data["addArea"].(map[string]any)
	tokens := added["pathTokens"].([]any)
	if !reflect.DeepEqual(tokens, []any{"USA", "Utah"}) {
		t.Errorf("pathTokens %v", tokens)
	}
	if usa.Metadata.Leaf {
		t.Error("parent still marked leaf after gaining a child")
	}
	if len(usa.Children) != 1 {
		t.Errorf("parent has %d children, want 1", len(usa.Children))
	}
}

func TestAddClimbMutation(t *testing.T) {
	ds := newMemStore()
	usa := models.NewArea("USA", nil)
	creek := models.NewArea("Indian Creek", usa)
	ds.areas[usa.Metadata.AreaID] = usa
	ds.areas[creek.Metadata.AreaID] = creek

	schema, err := NewSchema(ds)
	if err != nil {
		t.Fatal(err)
	}

	data := exec(t, schema,
		`mutation($a: String!) {
			addClimb(areaUuid: $a, name: "Scarface", grade: "5.11a", disciplines: ["trad"]) {
				uuid name grade disciplines areaUuid
			}
		}`,
		map[string]any{"a": creek.Metadata.AreaID})

	added := data["addClimb"].(map[string]any)
	if added["name"] != "Scarface" || added["grade"] != "5.11a" {
		t.Errorf("climb %v", added)
	}
	if !reflect.DeepEqual(added["disciplines"], []any{"trad"}) {
		t.Errorf("disciplines %v", added["disciplines"])
	}
	if added["areaUuid"] != creek.Metadata.AreaID {
		t.Error("climb not linked to owning area")
	}
	// count rolls up the whole ancestor chain
	if creek.TotalClimbs != 1 || usa.TotalClimbs != 1 {
		t.Errorf("totalClimbs creek=%d usa=%d, want 1/1", creek.TotalClimbs, usa.TotalClimbs)
	}
}

func TestAddClimbRejectsNonLeaf(t *testing.T) {
	ds := newMemStore()
	usa := models.NewArea("USA", nil)
	usa.Metadata.Leaf = false
	ds.areas[usa.Metadata.AreaID] = usa

	schema, err := NewSchema(ds)
	if err != nil {
		t.Fatal(err)
	}

	res := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  `mutation($a: String!) { addClimb(areaUuid: $a, name: "X") { uuid } }`,
		VariableValues: map[string]any{"a": usa.Metadata.AreaID},
		Context:        context.Background(),
	})
	if len(res.Errors) == 0 {
		t.Fatal("expected error adding a climb to a non-leaf area")
	}
}
