package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/types"
)

const validResumeJSON = `{
	"contact": {
		"name": "Jane Doe",
		"email": "jane@x.com",
		"phone": null,
		"linkedin": "linkedin.com/in/janedoe",
		"github": null,
		"website": null
	},
	"education": [
		{
			"school": "State University",
			"degree": "B.S. Computer Science",
			"location": "Springfield, IL",
			"date": "May 2020",
			"gpa": "3.8",
			"coursework": ["Operating Systems", "Databases"]
		}
	],
	"experience": [
		{
			"company": "Acme Corp",
			"position": "Backend Engineer",
			"location": "Remote",
			"date": "Jun 2020 - Present",
			"bullets": ["Built X", "Scaled Y to 10k RPS"]
		}
	],
	"projects": [
		{
			"name": "resume-forge",
			"technologies": ["Go", "PostgreSQL"],
			"date": "2023",
			"bullets": ["Wrote a resume pipeline"]
		}
	],
	"skills": {
		"Languages": ["Go", "Python"],
		"Databases": ["PostgreSQL"]
	}
}`

func TestValidate_AcceptsFullRecord(t *testing.T) {
	assert.NoError(t, Validate([]byte(validResumeJSON)))
}

func TestValidate_AcceptsMinimalRecord(t *testing.T) {
	minimal := `{
		"contact": {"name": "Jane Doe", "email": "jane@x.com"},
		"education": [],
		"experience": [],
		"skills": {}
	}`
	assert.NoError(t, Validate([]byte(minimal)))
}

func TestValidate_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "not an object",
			document: `["contact"]`,
		},
		{
			name:     "missing contact",
			document: `{"education": [], "experience": [], "skills": {}}`,
		},
		{
			name:     "empty contact name",
			document: `{"contact": {"name": "", "email": "jane@x.com"}, "education": [], "experience": [], "skills": {}}`,
		},
		{
			name:     "missing contact email",
			document: `{"contact": {"name": "Jane Doe"}, "education": [], "experience": [], "skills": {}}`,
		},
		{
			name: "education entry missing degree",
			document: `{
				"contact": {"name": "Jane Doe", "email": "jane@x.com"},
				"education": [{"school": "State U", "location": "Springfield", "date": "2020"}],
				"experience": [], "skills": {}
			}`,
		},
		{
			name: "experience entry missing bullets",
			document: `{
				"contact": {"name": "Jane Doe", "email": "jane@x.com"},
				"education": [],
				"experience": [{"company": "Acme", "position": "Engineer", "location": "Remote", "date": "2020"}],
				"skills": {}
			}`,
		},
		{
			name: "skills value not a list",
			document: `{
				"contact": {"name": "Jane Doe", "email": "jane@x.com"},
				"education": [], "experience": [],
				"skills": {"Languages": "Go"}
			}`,
		},
		{
			name: "education is not a sequence",
			document: `{
				"contact": {"name": "Jane Doe", "email": "jane@x.com"},
				"education": {"school": "State U"},
				"experience": [], "skills": {}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.document))
			require.Error(t, err)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestDecodeResume_TypedFields(t *testing.T) {
	resume, err := DecodeResume([]byte(validResumeJSON))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.Nil(t, resume.Contact.Phone)
	require.NotNil(t, resume.Contact.LinkedIn)
	assert.Equal(t, "linkedin.com/in/janedoe", *resume.Contact.LinkedIn)

	require.Len(t, resume.Education, 1)
	require.NotNil(t, resume.Education[0].GPA)
	assert.Equal(t, "3.8", *resume.Education[0].GPA)

	require.Len(t, resume.Skills, 2)
	assert.Equal(t, "Languages", resume.Skills[0].Name)
	assert.Equal(t, "Databases", resume.Skills[1].Name)
}

func TestDecodeResume_RejectsInvalid(t *testing.T) {
	resume, err := DecodeResume([]byte(`{"contact": {}}`))
	assert.Error(t, err)
	assert.Nil(t, resume)
}

func TestValidateRecord_RoundTrip(t *testing.T) {
	gpa := "3.9"
	record := &types.ResumeData{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "jane@x.com"},
		Education: []types.Education{
			{School: "State U", Degree: "B.S. CS", Location: "Springfield", Date: "2020", GPA: &gpa},
		},
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer", Location: "Remote", Date: "2020", Bullets: []string{"Built X"}},
		},
		Skills: types.Skills{{Name: "Languages", Skills: []string{"Go"}}},
	}

	assert.NoError(t, ValidateRecord(record))
}
