// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/gnap-bootstrap/models"

func sourceConfig() models.ServiceConfig {
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

func sourceClient() models.Client {
	return models.Client{
		ClientID:     "7e057b0c-17e8-4ab4-9260-2b33f32b2cce",
		ClientName:   "test_client_1",
		RedirectURIs: []string{"http://localhost:8000"},
	}
}

func sourceAccount() models.Account {
	return models.Account{
		AccountID: "e63769de-3a44-11ec-8d3d-0242ac130003",
		Address: []models.Address{{
			Country: "000", Formatted: "000", Locality: "000",
			PostalCode: "000", Region: "000", StreetAddress: "000",
		}},
		Birthdate:         "1987-10-16",
		Email:             []models.EmailAddress{{Address: "johndoe@example.com", Primary: true}},
		FamilyName:        "Doe",
		Gender:            "male",
		GivenName:         "John",
		Locale:            "en-US",
		MiddleName:        "Middle",
		Name:              "John Doe",
		Nickname:          "Johny",
		Phone:             []models.PhoneNumber{{PhoneNumber: "+49 000 000000", Primary: true}},
		Picture:           "http://lorempixel.com/400/200/people",
		PreferredUsername: "johnny",
		Profile:           "https://johnswebsite.com",
		Website:           "http://example.com",
		Zoneinfo:          "Europe/Berlin",
	}
}
