// Command glb-analyze runs the meshdiag diagnostics pipeline over a
// mesh fixture and reports the results, either as a human-readable
// summary or as JSON for downstream tooling.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tigerabrodi/glb-analyzer/internal/meshfixture"
	"github.com/tigerabrodi/glb-analyzer/meshdiag"
)

var (
	jsonOutput   = flag.Bool("json", false, "Emit the diagnostics report as JSON")
	triangleCap  = flag.Int("triangle-cap", 0, "Override the triangle capacity guard (0 keeps the default)")
	dupEpsilon   = flag.Float64("duplicate-epsilon", 0, "Override the duplicate-vertex distance (0 keeps the default)")
	thinWallFrac = flag.Float64("thin-wall-fraction", 0, "Override the thin-wall threshold fraction (0 keeps the default)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: glb-analyze [options] <mesh.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	log.Printf("Loading mesh fixture from %s...", filename)

	data, err := meshfixture.Load(filename)
	if err != nil {
		log.Fatalf("Failed to load mesh fixture: %v", err)
	}

	var opts []meshdiag.AnalyzeOption
	if *triangleCap > 0 {
		opts = append(opts, meshdiag.WithTriangleCap(*triangleCap))
	}
	if *dupEpsilon > 0 {
		opts = append(opts, meshdiag.WithDuplicateEpsilon(*dupEpsilon))
	}
	if *thinWallFrac > 0 {
		opts = append(opts, meshdiag.WithThinWallFraction(*thinWallFrac))
	}

	result, err := meshdiag.Analyze(data.Positions, data.Indices, opts...)
	if err != nil {
		log.Fatalf("Analysis rejected the mesh: %v", err)
	}

	if *jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		return
	}

	printSummary(result)
}

func printSummary(result meshdiag.Result) {
	d := result.Diagnostics

	log.Printf("Mesh: %d vertices, %d triangles, %d edges", d.VertexCount, d.TriangleCount, d.EdgeCount)

	if d.WindingCheckSkipped {
		log.Println("⚠️  Triangle count exceeds the capacity guard; only vertex/triangle counts and the bounding box were computed")
		return
	}

	log.Println("\n=== Topology ===")
	if d.IsWatertight {
		log.Println("✓ Watertight (no boundary edges)")
	} else {
		log.Printf("❌ %d boundary edges", d.BoundaryEdgeCount)
	}
	if d.IsManifold {
		log.Println("✓ Edge-manifold")
	} else {
		log.Printf("❌ %d non-manifold edges", d.NonManifoldEdgeCount)
	}
	if d.HasNonManifoldVertices {
		log.Printf("❌ %d non-manifold (pinch-point) vertices", d.NonManifoldVertexCount)
	} else {
		log.Println("✓ No non-manifold vertices")
	}
	log.Printf("   %d connected component(s), Euler characteristic %d", d.ConnectedComponents, d.EulerCharacteristic)

	log.Println("\n=== Winding ===")
	if d.HasConsistentWinding {
		log.Printf("✓ Consistent winding (%.1f%%)", d.WindingConsistencyPercent)
	} else {
		log.Printf("❌ Inconsistent winding: %d edges affected (%.1f%% consistent)",
			d.WindingInconsistentEdgeCount, d.WindingConsistencyPercent)
	}

	log.Println("\n=== Triangle quality ===")
	log.Printf("   %d degenerate, %d tiny, %d needle-shaped", d.DegenerateTriangleCount, d.TinyTriangleCount, d.NeedleTriangleCount)

	log.Println("\n=== Geometric defects ===")
	log.Printf("   %d duplicate vertices (epsilon-distance)", d.DuplicateVertexCount)
	log.Printf("   %d self-intersecting triangle pairs", d.SelfIntersectionCount)
	log.Printf("   %d T-junction vertices", d.TJunctionCount)
	log.Printf("   %d thin-wall vertices (threshold %.6f)", d.ThinWallCount, d.ThinWallThreshold)
	log.Printf("   %d coincident face pairs", d.CoincidentFaceCount)

	if d.BoundingBox != nil {
		log.Println("\n=== Bounding box ===")
		log.Printf("   min %v, max %v, diagonal %.4f", d.BoundingBox.Min.Array(), d.BoundingBox.Max.Array(), d.BoundingBox.Diagonal)
	}

	issues := 0
	if !d.IsWatertight || !d.IsManifold || d.HasNonManifoldVertices || !d.HasConsistentWinding {
		issues++
	}
	if d.DegenerateTriangleCount+d.NeedleTriangleCount+d.SelfIntersectionCount+d.TJunctionCount+d.ThinWallCount+d.CoincidentFaceCount > 0 {
		issues++
	}

	log.Println("\n=== Summary ===")
	if issues == 0 {
		log.Println("✓ Mesh is clean")
		os.Exit(0)
	}
	log.Printf("❌ Mesh has %d categories of diagnosed issues", issues)
	os.Exit(1)
}
