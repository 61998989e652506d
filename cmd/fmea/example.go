// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import "github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"

// exampleInput returns the built-in automotive disc brake example used
// when no input file or stdin payload is provided.
func exampleInput() fmea.Input {
	return fmea.Input{
		SystemName: "Automotive Disc Brake System",
		SystemDescription: "A hydraulic disc brake system used in a passenger vehicle to decelerate " +
			"and stop the vehicle safely. The system operates under temperatures ranging " +
			"from -40°C to +300°C (rotor surface) and must meet ISO 26262 ASIL-B requirements.",
		Components: []fmea.Component{
			{
				Name:     "Brake Caliper",
				Function: "Apply clamping force to the brake disc to generate braking torque",
			},
			{
				Name:     "Brake Disc (Rotor)",
				Function: "Convert kinetic energy to heat through friction with brake pads",
			},
			{
				Name:     "Brake Pads",
				Function: "Provide controlled friction surface against the rotor to slow rotation",
			},
			{
				Name:     "Hydraulic Master Cylinder",
				Function: "Convert driver pedal force into hydraulic pressure throughout the brake circuit",
			},
			{
				Name:     "ABS Control Unit",
				Function: "Modulate brake pressure to prevent wheel lock-up during emergency braking",
			},
		},
		Scope: fmea.ScopeDesign,
	}
}
