package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsUnmarshal_PreservesOrder(t *testing.T) {
	input := `{"Languages": ["Go", "Python"], "Databases": ["PostgreSQL"], "Tools": ["Docker", "Git"]}`

	var skills Skills
	require.NoError(t, json.Unmarshal([]byte(input), &skills))

	require.Len(t, skills, 3)
	assert.Equal(t, "Languages", skills[0].Name)
	assert.Equal(t, []string{"Go", "Python"}, skills[0].Skills)
	assert.Equal(t, "Databases", skills[1].Name)
	assert.Equal(t, "Tools", skills[2].Name)
}

func TestSkillsMarshal_EmitsSliceOrder(t *testing.T) {
	skills := Skills{
		{Name: "Zeta", Skills: []string{"z1"}},
		{Name: "Alpha", Skills: []string{"a1", "a2"}},
	}

	data, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["z1"],"Alpha":["a1","a2"]}`, string(data))
}

func TestSkillsUnmarshal_RejectsNonObject(t *testing.T) {
	var skills Skills
	err := json.Unmarshal([]byte(`["Go"]`), &skills)
	assert.Error(t, err)
}

func TestSkillsGet(t *testing.T) {
	skills := Skills{
		{Name: "Languages", Skills: []string{"Go"}},
	}

	items, ok := skills.Get("Languages")
	assert.True(t, ok)
	assert.Equal(t, []string{"Go"}, items)

	_, ok = skills.Get("Missing")
	assert.False(t, ok)
}

func TestResumeDataRoundTrip_OptionalFieldsStayAbsent(t *testing.T) {
	input := `{
		"contact": {"name": "Jane Doe", "email": "jane@x.com", "phone": null},
		"education": [{"school": "State U", "degree": "B.S. CS", "location": "Springfield", "date": "2020"}],
		"experience": [],
		"skills": {}
	}`

	var resume ResumeData
	require.NoError(t, json.Unmarshal([]byte(input), &resume))

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.Nil(t, resume.Contact.Phone)
	require.Len(t, resume.Education, 1)
	assert.Nil(t, resume.Education[0].GPA)
	assert.Nil(t, resume.Education[0].Coursework)
	assert.Nil(t, resume.Projects)

	// Re-marshal must not invent absent optional fields.
	out, err := json.Marshal(&resume)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"gpa"`)
	assert.NotContains(t, string(out), `"phone"`)
	assert.NotContains(t, string(out), `"projects"`)
}

func TestApplicationContextValidate(t *testing.T) {
	ctx := ApplicationContext{JobTitle: "Backend Engineer", JobDescription: "Go, distributed systems"}
	assert.NoError(t, ctx.Validate())

	empty := ApplicationContext{}
	assert.Error(t, empty.Validate())

	noDesc := ApplicationContext{JobTitle: "Backend Engineer"}
	assert.Error(t, noDesc.Validate())
}
