package service

import (
	"github.com/MKhiriev/gnap-bootstrap/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func testConfig() models.ServiceConfig {
	return models.ServiceConfig{
		ServiceEndpoints: models.ServiceEndpoints{
			GrantRequest:         "http://localhost:8000/gnap/tx",
			Introspection:        "http://localhost:8000/gnap/introspect",
			ResourceRegistration: "http://localhost:8000/gnap/resource",
		},
		InteractionStartModesSupported:    []models.InteractionStartMode{"redirect", "app", "user_code"},
		InteractionFinishMethodsSupported: []models.InteractionFinishMethod{"redirect", "push"},
		KeyProofsSupported:                []models.KeyProof{"httpsig", "mtls", "jwsd", "jws"},
		SubjectFormatsSupported:           []models.SubjectFormat{"account", "aliases", "did", "email", "iss_sub", "opaque", "phone_number"},
		AssertionsSupported:               []models.AssertionFormat{"oidc", "saml2"},
		TokenFormatsSupported:             []models.TokenFormat{"jwt", "paseto"},
	}
}

func testSeed() models.Seed {
	return models.Seed{
		Config: testConfig(),
		Clients: []models.Client{{
			ClientID:     "7e057b0c-17e8-4ab4-9260-2b33f32b2cce",
			ClientName:   "test_client_1",
			RedirectURIs: []string{"http://localhost:8000"},
		}},
		Accounts: []models.Account{{
			AccountID: "e63769de-3a44-11ec-8d3d-0242ac130003",
			GivenName: "John",
			Email:     []models.EmailAddress{{Address: "johndoe@example.com", Primary: true}},
			Zoneinfo:  "Europe/Berlin",
		}},
	}
}
