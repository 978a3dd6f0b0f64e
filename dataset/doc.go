// SPDX-License-Identifier: MIT

// Package dataset loads node-classification graphs stored in the GraphSAINT
// directory layout:
//
//	adj_full.npz     scipy CSR adjacency (indptr, indices, optional data, shape)
//	feats.npy        N×F float32 or float64 node features, C order
//	class_map.json   {"node": class} or {"node": [multi-hot]}
//	role.json        {"tr": [...], "va": [...], "te": [...]}
//
// NumPy containers are decoded with github.com/sbinet/npyio.
package dataset
